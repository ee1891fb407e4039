package options

import (
	"errors"
	"fmt"
	"testing"

	"github.com/spf13/cobra"

	"tableflip.dev/pedal/pkg/api"
	"tableflip.dev/pedal/pkg/datepicker"
)

func TestDateArgs(t *testing.T) {
	o := &DateOptions{}
	cmd := &cobra.Command{Use: "test"}
	AddDateArgs(cmd, o)
	if err := cmd.Flags().Parse([]string{"--from=2024-3-1", "--to", "2024-03-04"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	r, err := o.Range()
	if err != nil {
		t.Fatalf("Range: %v", err)
	}
	if r.Start.String() != "2024-03-01" || r.End.String() != "2024-03-04" {
		t.Fatalf("range = %v", r)
	}
	if got := cmd.Flags().Lookup("from").Value.Type(); got != "date" {
		t.Fatalf("flag type = %q", got)
	}
}

func TestDateArgsRejectsBadInput(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	AddDateArgs(cmd, &DateOptions{})
	if err := cmd.Flags().Parse([]string{"--from=March"}); err == nil {
		t.Fatalf("expected a parse error")
	}
}

func TestRangeDefaults(t *testing.T) {
	if _, err := (&DateOptions{}).Range(); err == nil {
		t.Fatalf("expected --from to be required")
	}
	single := &DateOptions{From: datepicker.MustParseDate("2024-03-01")}
	r, err := single.Range()
	if err != nil || r.Start != r.End {
		t.Fatalf("single day range = %v, %v", r, err)
	}
	inverted := &DateOptions{From: datepicker.MustParseDate("2024-03-04"), To: datepicker.MustParseDate("2024-03-01")}
	if _, err := inverted.Range(); !errors.Is(err, datepicker.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestHandleErrorJSON(t *testing.T) {
	o := &OutputOptions{JSON: true}
	if err := o.HandleError(errors.New("boom")); err != nil {
		t.Fatalf("json mode should report errors on stdout, got %v", err)
	}
	o.JSON = false
	if err := o.HandleError(errors.New("boom")); err == nil {
		t.Fatalf("text mode should return the error")
	}
}

func TestErrorReason(t *testing.T) {
	err := fmt.Errorf("rent: %w", api.ErrUnavailable)
	if got := errorReason(err); got != "unavailable" {
		t.Fatalf("reason = %q", got)
	}
	if got := errorReason(errors.New("boom")); got != "" {
		t.Fatalf("reason = %q", got)
	}
}

func TestMCPOptions(t *testing.T) {
	tests := []struct {
		name    string
		opts    MCPOptions
		addr    string
		path    string
		wantErr bool
	}{{
		name: "defaults",
		opts: MCPOptions{Host: "127.0.0.1", Port: 8485, Path: "/mcp"},
		addr: "127.0.0.1:8485",
		path: "/mcp",
	}, {
		name: "relative path and empty host",
		opts: MCPOptions{Transport: "HTTP", Port: 0, Path: "rpc"},
		addr: "127.0.0.1:0",
		path: "/rpc",
	}, {
		name:    "bad port",
		opts:    MCPOptions{Port: 70000},
		wantErr: true,
	}, {
		name:    "cert without key",
		opts:    MCPOptions{TLSCert: "cert.pem"},
		wantErr: true,
	}, {
		name:    "unknown transport",
		opts:    MCPOptions{Transport: "grpc"},
		wantErr: true,
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := tt.opts
			err := o.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %t", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if o.Transport != "http" {
				t.Fatalf("transport = %q", o.Transport)
			}
			if got := o.Addr(); got != tt.addr {
				t.Fatalf("Addr() = %q, want %q", got, tt.addr)
			}
			if got := o.EndpointPath(); got != tt.path {
				t.Fatalf("EndpointPath() = %q, want %q", got, tt.path)
			}
		})
	}
}
