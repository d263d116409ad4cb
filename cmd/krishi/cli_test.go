package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"krishi/entities"
	"krishi/pkg/cropcal"
)

func TestRoleFromFlag(t *testing.T) {
	flagRole = "farmer"
	role, err := roleFromFlag()
	require.NoError(t, err)
	require.Equal(t, entities.RoleFarmer, role)

	flagRole = "expert"
	role, err = roleFromFlag()
	require.NoError(t, err)
	require.Equal(t, entities.RoleExpert, role)

	flagRole = "admin"
	_, err = roleFromFlag()
	require.Error(t, err)
}

func TestParseFilter(t *testing.T) {
	for _, v := range []string{"all", "active", "completed"} {
		f, err := parseFilter(v)
		require.NoError(t, err)
		require.Equal(t, cropcal.Filter(v), f)
	}
	_, err := parseFilter("done")
	require.Error(t, err)
}
