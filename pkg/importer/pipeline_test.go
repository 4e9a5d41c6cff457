package importer

import (
	"context"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okPass(name string, ran *[]string) PassSpec {
	return PassSpec{
		Name: name,
		Run: func(ctx context.Context) (*RunReport, error) {
			*ran = append(*ran, name)
			return newRunReport(name, 0), nil
		},
	}
}

func TestPipeline_RunsInDeclaredOrder(t *testing.T) {
	var ran []string
	p, err := NewPipeline(
		okPass("clients", &ran),
		okPass("professionals", &ran),
		PassSpec{
			Name:     "users",
			Requires: []string{"professionals"},
			Run: func(ctx context.Context) (*RunReport, error) {
				ran = append(ran, "users")
				return newRunReport("users", 0), nil
			},
		},
	)
	require.NoError(t, err)

	var reported []string
	err = p.Run(context.Background(), func(r *RunReport) {
		reported = append(reported, r.Pass)
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"clients", "professionals", "users"}, ran)
	assert.Equal(t, []string{"clients", "professionals", "users"}, reported)
}

func TestPipeline_RejectsForwardRequirement(t *testing.T) {
	var ran []string
	_, err := NewPipeline(
		PassSpec{
			Name:     "users",
			Requires: []string{"professionals"},
			Run: func(ctx context.Context) (*RunReport, error) {
				return newRunReport("users", 0), nil
			},
		},
		okPass("professionals", &ran),
	)
	assert.Error(t, err)
}

func TestPipeline_FatalFailureSkipsDependents(t *testing.T) {
	var ran []string
	p, err := NewPipeline(
		okPass("clients", &ran),
		PassSpec{
			Name: "professionals",
			Run: func(ctx context.Context) (*RunReport, error) {
				return nil, errors.New("roster missing")
			},
		},
		PassSpec{
			Name:     "users",
			Requires: []string{"professionals"},
			Run: func(ctx context.Context) (*RunReport, error) {
				ran = append(ran, "users")
				return newRunReport("users", 0), nil
			},
		},
	)
	require.NoError(t, err)

	err = p.Run(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDependencyFailed)
	assert.Equal(t, []string{"clients"}, ran, "independent clients pass still ran; users did not")
}
