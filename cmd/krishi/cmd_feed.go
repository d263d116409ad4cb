package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	feedImage string
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Browse and post to the community feed",
}

var feedListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the latest posts",
	RunE:  runFeedList,
}

var feedLikeCmd = &cobra.Command{
	Use:   "like <post-id>",
	Short: "Like a post",
	Args:  cobra.ExactArgs(1),
	RunE:  runFeedLike,
}

var feedCommentCmd = &cobra.Command{
	Use:   "comment <post-id> <text...>",
	Short: "Comment on a post (experts only)",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runFeedComment,
}

var feedPostCmd = &cobra.Command{
	Use:   "post <text...>",
	Short: "Publish a post",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFeedPost,
}

func init() {
	feedPostCmd.Flags().StringVar(&feedImage, "image", "", "image URL to attach")
	feedCmd.AddCommand(feedListCmd, feedLikeCmd, feedCommentCmd, feedPostCmd)
}

func runFeedList(cmd *cobra.Command, args []string) error {
	if err := requireLogin(); err != nil {
		return err
	}
	if err := a.feed.Refresh(); err != nil {
		return err
	}
	for _, p := range a.feed.Posts() {
		fmt.Printf("[%s] %s (%s)\n", p.ID, p.Farmer.Name, p.CreatedAt)
		fmt.Println(p.Content)
		fmt.Printf("%d likes, %d comments\n", p.LikeCount, len(p.Comments))
		for _, c := range p.Comments {
			fmt.Printf("  %s: %s\n", c.User.Name, c.Text)
		}
		fmt.Println()
	}
	return nil
}

func runFeedLike(cmd *cobra.Command, args []string) error {
	if err := requireLogin(); err != nil {
		return err
	}
	if err := a.feed.Refresh(); err != nil {
		return err
	}
	if err := a.feed.Like(args[0]); err != nil {
		return err
	}
	fmt.Println("Liked")
	return nil
}

func runFeedComment(cmd *cobra.Command, args []string) error {
	if err := requireLogin(); err != nil {
		return err
	}
	if err := a.feed.Refresh(); err != nil {
		return err
	}
	c, err := a.feed.Comment(args[0], strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	fmt.Printf("Commented as %s\n", c.User.Name)
	return nil
}

func runFeedPost(cmd *cobra.Command, args []string) error {
	if err := requireLogin(); err != nil {
		return err
	}
	if err := a.feed.Create(strings.Join(args, " "), feedImage); err != nil {
		return err
	}
	fmt.Println("Posted")
	return nil
}
