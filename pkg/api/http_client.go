// pkg/api/http_client.go

package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"krishi/entities"
)

type httpAPI struct {
	baseURL string
	httpc   *http.Client
}

func NewHTTP(baseURL string, timeout time.Duration) Client {
	if timeout <= 0 {
		timeout = 25 * time.Second
	}
	return &httpAPI{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}
}

func (c *httpAPI) FarmerLogin(phoneNumber, password string) (entities.User, error) {
	body := map[string]string{"phoneNumber": phoneNumber, "password": password}
	return c.loginCall("/farmer/login", body)
}

func (c *httpAPI) ExpertLogin(email, password string) (entities.User, error) {
	body := map[string]string{"email": email, "password": password}
	return c.loginCall("/expert/login", body)
}

func (c *httpAPI) FarmerRegister(req RegisterRequest) (entities.User, error) {
	return c.loginCall("/farmer", req)
}

func (c *httpAPI) ExpertRegister(req RegisterRequest) (entities.User, error) {
	return c.loginCall("/expert", req)
}

// loginCall covers the four auth endpoints: they all answer with the
// user profile (token included) in the envelope's response field.
func (c *httpAPI) loginCall(path string, body any) (entities.User, error) {
	var u entities.User
	if err := c.do(http.MethodPost, path, "", body, &u); err != nil {
		return entities.User{}, err
	}
	if u.Token == "" && u.Name == "" {
		return entities.User{}, &ServerError{Message: "empty profile in response"}
	}
	return u, nil
}

func (c *httpAPI) SubmitSmartIrrigation(token string, req entities.SmartIrrigationRequest) error {
	return c.do(http.MethodPost, "/farmer/service/smart-irrigation", token, req, nil)
}

func (c *httpAPI) SubmitDroneSpraying(token string, req entities.DroneSprayingRequest) error {
	return c.do(http.MethodPost, "/farmer/service/drone-spraying", token, req, nil)
}

func (c *httpAPI) SubmitExpertVisit(token string, req entities.ExpertVisitRequest) error {
	return c.do(http.MethodPost, "/farmer/service/expert-visit", token, req, nil)
}

func (c *httpAPI) CropCalendars(token string) ([]entities.CropCalendar, error) {
	var out []entities.CropCalendar
	if err := c.do(http.MethodGet, "/farmer/cropcalendar/all", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *httpAPI) CreateCropCalendar(token string, cal entities.CropCalendar) error {
	return c.do(http.MethodPost, "/farmer/cropcalendar", token, cal, nil)
}

func (c *httpAPI) Posts() ([]entities.Post, error) {
	var out []entities.Post
	if err := c.do(http.MethodGet, "/posts/all", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *httpAPI) LikePost(token, postID string) error {
	return c.do(http.MethodPost, "/like/post/"+postID, token, nil, nil)
}

func (c *httpAPI) CreatePost(token, content, image string) error {
	body := map[string]string{"content": content}
	if image != "" {
		body["image"] = image
	}
	return c.do(http.MethodPost, "/farmer/posts/create", token, body, nil)
}

// do performs one JSON round trip. A non-2xx status or an envelope
// without a usable response surfaces the server's message when present,
// a generic one otherwise. out, when non-nil, receives the envelope's
// response field.
func (c *httpAPI) do(method, path, token string, body, out any) error {
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("x-access-token", token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if out != nil {
		raw := struct {
			Success  bool            `json:"success"`
			Message  string          `json:"message"`
			Response json.RawMessage `json:"response"`
		}{}
		if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
			if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return fmt.Errorf("decode %s: %w", path, err)
			}
			return &ServerError{Status: resp.StatusCode}
		}
		env = envelope{Success: raw.Success, Message: raw.Message}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 || len(raw.Response) == 0 || string(raw.Response) == "null" {
			return &ServerError{Status: resp.StatusCode, Message: env.Message}
		}
		if err := json.Unmarshal(raw.Response, out); err != nil {
			return fmt.Errorf("decode %s response: %w", path, err)
		}
		return nil
	}

	// no payload expected; still read the message for errors
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
		// some endpoints answer with an empty body on success
		return nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &ServerError{Status: resp.StatusCode, Message: env.Message}
	}
	return nil
}
