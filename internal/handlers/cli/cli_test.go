package cli

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/fievelk/virtualias/internal/adapters/aliasmanifest"
	"github.com/fievelk/virtualias/internal/core/ports"
	"github.com/fievelk/virtualias/internal/core/services/aliasmanagement"
	"github.com/fievelk/virtualias/internal/core/testutil"
	"github.com/spf13/cobra"
)

const fooBlock = "# Start of alias: foo\nfoo() {\n    cd /home/u\n    source /home/u/env/bin/activate\n}\n# End of alias: foo\n"

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// fakeEnvCreationService records the last request and returns a canned outcome.
type fakeEnvCreationService struct {
	result   ports.CreateResult
	err      error
	requests []ports.CreateRequest
}

func (f *fakeEnvCreationService) Create(_ context.Context, req ports.CreateRequest) (ports.CreateResult, error) {
	f.requests = append(f.requests, req)
	return f.result, f.err
}

func newTestRoot(env ports.EnvCreationService, reg *testutil.MemoryAliasRegistry) *cobra.Command {
	return NewRootCommand("1.2.3", env, aliasmanagement.NewService(reg, aliasmanifest.NewYAMLReader()))
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}
