package terminal

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/instance-isolator/pkg/models/domain"
	"github.com/de-tools/instance-isolator/pkg/services/responder"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockIsolator struct {
	mock.Mock
}

func (m *mockIsolator) Handle(ctx context.Context, ev domain.IncidentEvent) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

func newTestCLI(iso *mockIsolator, out *bytes.Buffer, gotPath *string) *CLI {
	return NewCLI(Options{
		Output:    out,
		LogOutput: io.Discard,
		Factory: func(_ context.Context, configPath string, _ io.Writer) (*responder.Responder, error) {
			if gotPath != nil {
				*gotPath = configPath
			}
			return &responder.Responder{Isolator: iso, Logger: zerolog.Nop()}, nil
		},
	})
}

func TestIsolateCmd(t *testing.T) {
	var out bytes.Buffer
	var configPath string
	iso := new(mockIsolator)
	iso.On("Handle", mock.Anything, domain.IncidentEvent{Region: "eu-west-1", InstanceID: "i-0abc"}).Return(nil)

	cli := newTestCLI(iso, &out, &configPath)
	cli.SetArgs([]string{"isolate", "--instance-id", "i-0abc", "--region", "eu-west-1", "--config", "isolator.yaml"})

	require.NoError(t, cli.Execute())
	iso.AssertExpectations(t)
	assert.Equal(t, "isolator.yaml", configPath)
	assert.Contains(t, out.String(), "Instance: i-0abc")
	assert.Contains(t, out.String(), "Status:   isolated")
}

func TestIsolateCmd_RequiresFlags(t *testing.T) {
	iso := new(mockIsolator)
	cli := newTestCLI(iso, &bytes.Buffer{}, nil)
	cli.SetArgs([]string{"isolate", "--instance-id", "i-0abc"})

	err := cli.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "region")
	iso.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestInvokeCmd_ReportsFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "finding.json")
	payload := `{"region": "us-east-2", "detail": {"resource": {"instanceDetails": {"instanceId": "i-bad"}}}}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	boom := errors.New("UnauthorizedOperation: not allowed")
	var out bytes.Buffer
	iso := new(mockIsolator)
	iso.On("Handle", mock.Anything, domain.IncidentEvent{Region: "us-east-2", InstanceID: "i-bad"}).Return(boom)

	cli := newTestCLI(iso, &out, nil)
	cli.SetArgs([]string{"invoke", "--event", path})

	err := cli.Execute()

	assert.Same(t, boom, err)
	assert.Contains(t, out.String(), "Status:   failed")
	assert.Contains(t, out.String(), "Error:    UnauthorizedOperation: not allowed")
}

func TestInvokeCmd_MissingFile(t *testing.T) {
	iso := new(mockIsolator)
	cli := newTestCLI(iso, &bytes.Buffer{}, nil)
	cli.SetArgs([]string{"invoke", "--event", filepath.Join(t.TempDir(), "nope.json")})

	err := cli.Execute()

	assert.ErrorContains(t, err, "failed to read event")
	iso.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestCLI_FactoryError(t *testing.T) {
	cli := NewCLI(Options{
		Output: &bytes.Buffer{},
		Factory: func(context.Context, string, io.Writer) (*responder.Responder, error) {
			return nil, errors.New("missing required settings: ISOLATION_SG")
		},
	})
	cli.SetArgs([]string{"isolate", "--instance-id", "i-1", "--region", "us-east-1"})

	assert.EqualError(t, cli.Execute(), "missing required settings: ISOLATION_SG")
}
