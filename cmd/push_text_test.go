package cmd

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	kerrors "github.com/ppc-cli/ppc/internal/errors"
	"github.com/ppc-cli/ppc/internal/pwpush"
)

type recordedRequest struct {
	path   string
	header http.Header
	body   string
}

func newRecordingServer(t *testing.T, status int, response string) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var requests []recordedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		requests = append(requests, recordedRequest{path: r.URL.Path, header: r.Header.Clone(), body: string(data)})
		w.WriteHeader(status)
		w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)
	return server, &requests
}

func TestPushText(t *testing.T) {
	setupTestEnvironment(t)
	server, requests := newRecordingServer(t, http.StatusCreated, `{"url_token":"abc"}`)

	args := append(serverArgs(server),
		"--email", "me@example.com", "--token", "tok",
		"push", "text", "my secret",
		"--note", "for bob", "--expire-after-views", "1", "--no-retrieval-step")
	stdout, stderr, err := executeCommand(t, "", args...)
	if err != nil {
		t.Fatalf("Command failed: %v\nstderr: %s", err, stderr)
	}

	if len(*requests) != 1 {
		t.Fatalf("expected one request, got %d", len(*requests))
	}
	req := (*requests)[0]
	if req.path != "/p.json" {
		t.Errorf("expected request to /p.json, got %s", req.path)
	}
	want := "password[payload]=my%20secret&password[note]=for%20bob&password[expire_after_views]=1&password[retrieval_step]=false"
	if req.body != want {
		t.Errorf("unexpected body:\n got: %s\nwant: %s", req.body, want)
	}
	if req.header.Get("X-User-Email") != "me@example.com" || req.header.Get("X-User-Token") != "tok" {
		t.Errorf("expected credential headers, got %v", req.header)
	}

	if stdout != "{\"url_token\":\"abc\"}\n" {
		t.Errorf("stdout should carry the raw response body, got %q", stdout)
	}
	if !strings.Contains(stderr, "201 Created") {
		t.Errorf("stderr should report the status, got %q", stderr)
	}
}

func TestPushTextFromStdin(t *testing.T) {
	setupTestEnvironment(t)
	server, requests := newRecordingServer(t, http.StatusCreated, "{}")

	args := append(serverArgs(server), "push", "text")
	if _, stderr, err := executeCommand(t, "piped secret\n", args...); err != nil {
		t.Fatalf("Command failed: %v\nstderr: %s", err, stderr)
	}

	if len(*requests) != 1 || (*requests)[0].body != "password[payload]=piped%20secret" {
		t.Errorf("unexpected requests: %+v", *requests)
	}
	if h := (*requests)[0].header; h.Get("X-User-Email") != "" || h.Get("X-User-Token") != "" {
		t.Errorf("anonymous push should not send credential headers, got %v", h)
	}
}

func TestPushTextEmptyStdin(t *testing.T) {
	setupTestEnvironment(t)
	server, requests := newRecordingServer(t, http.StatusCreated, "{}")

	args := append(serverArgs(server), "push", "text")
	_, _, err := executeCommand(t, "", args...)
	if !errors.Is(err, kerrors.ErrNoPayload) {
		t.Errorf("expected ErrNoPayload, got %v", err)
	}
	if len(*requests) != 0 {
		t.Errorf("no request should be sent without a payload")
	}
}

func TestPushTextMutuallyExclusiveFlags(t *testing.T) {
	setupTestEnvironment(t)
	server, requests := newRecordingServer(t, http.StatusCreated, "{}")

	args := append(serverArgs(server), "push", "text", "x", "--retrieval-step", "--no-retrieval-step")
	_, _, err := executeCommand(t, "", args...)
	if err == nil || !strings.Contains(err.Error(), "none of the others can be") {
		t.Errorf("expected mutually exclusive flag error, got %v", err)
	}
	if len(*requests) != 0 {
		t.Errorf("no request should be sent for conflicting flags")
	}
}

func TestPushTextErrorStatusJSON(t *testing.T) {
	setupTestEnvironment(t)
	server, _ := newRecordingServer(t, http.StatusUnprocessableEntity, `{"error":"payload too large"}`)

	args := append(serverArgs(server), "--json", "push", "text", "x")
	stdout, _, err := executeCommand(t, "", args...)
	if !errors.Is(err, kerrors.ErrReported) {
		t.Fatalf("a 4xx status should fail the command, got %v", err)
	}

	var got outcomeJSON
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, stdout)
	}
	if got.Status != http.StatusUnprocessableEntity || got.Body != `{"error":"payload too large"}` || got.Error != "" {
		t.Errorf("unexpected JSON output: %+v", got)
	}
}

func TestPushTextTransportFailure(t *testing.T) {
	setupTestEnvironment(t)
	server := httptest.NewServer(http.NotFoundHandler())
	args := append(serverArgs(server), "push", "text", "x")
	server.Close()

	stdout, stderr, err := executeCommand(t, "", args...)
	if !errors.Is(err, kerrors.ErrReported) {
		t.Fatalf("expected ErrReported, got %v", err)
	}
	if stdout != "" {
		t.Errorf("nothing should be written to stdout, got %q", stdout)
	}
	if !strings.Contains(stderr, "Request failed:") || !strings.Contains(stderr, "/p.json") {
		t.Errorf("stderr should carry the transport error, got %q", stderr)
	}
}

func TestPushTextIncompleteCredentials(t *testing.T) {
	setupTestEnvironment(t)

	_, _, err := executeCommand(t, "", "--email", "me@example.com", "push", "text", "x")
	if !errors.Is(err, kerrors.ErrIncompleteCredentials) {
		t.Errorf("expected ErrIncompleteCredentials, got %v", err)
	}
}

func TestPushTextInvalidProtocol(t *testing.T) {
	setupTestEnvironment(t)

	_, _, err := executeCommand(t, "", "--protocol", "ftp", "push", "text", "x")
	if err == nil || !strings.Contains(err.Error(), "protocol must be http or https") {
		t.Errorf("expected protocol error, got %v", err)
	}
}

func TestResolveTextPush(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, p pwpush.TextPush)
	}{
		{
			name: "nothing set",
			args: []string{},
			check: func(t *testing.T, p pwpush.TextPush) {
				if p.Passphrase != nil || p.Note != nil || p.ExpireAfterDays != nil || p.ExpireAfterViews != nil {
					t.Errorf("optional fields should be unset, got %+v", p)
				}
				if p.DeletableByViewer.IsSet() || p.RetrievalStep.IsSet() {
					t.Errorf("tri-states should be unset, got %+v", p)
				}
			},
		},
		{
			name: "zero values are explicit",
			args: []string{"--expire-after-days", "0", "--passphrase", ""},
			check: func(t *testing.T, p pwpush.TextPush) {
				if p.ExpireAfterDays == nil || *p.ExpireAfterDays != 0 {
					t.Errorf("expected explicit 0 days, got %v", p.ExpireAfterDays)
				}
				if p.Passphrase == nil || *p.Passphrase != "" {
					t.Errorf("expected explicit empty passphrase, got %v", p.Passphrase)
				}
			},
		},
		{
			name: "positive flags",
			args: []string{"--deletable-by-viewer", "--retrieval-step"},
			check: func(t *testing.T, p pwpush.TextPush) {
				if p.DeletableByViewer != pwpush.True || p.RetrievalStep != pwpush.True {
					t.Errorf("expected both true, got %v %v", p.DeletableByViewer, p.RetrievalStep)
				}
			},
		},
		{
			name: "negated flags",
			args: []string{"--no-deletable-by-viewer", "--no-retrieval-step"},
			check: func(t *testing.T, p pwpush.TextPush) {
				if p.DeletableByViewer != pwpush.False || p.RetrievalStep != pwpush.False {
					t.Errorf("expected both false, got %v %v", p.DeletableByViewer, p.RetrievalStep)
				}
			},
		},
		{
			name: "explicit false on positive flag",
			args: []string{"--deletable-by-viewer=false"},
			check: func(t *testing.T, p pwpush.TextPush) {
				if p.DeletableByViewer != pwpush.False {
					t.Errorf("expected false, got %v", p.DeletableByViewer)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetPushTextCommandState()
			resetCobraFlagState(pushTextCmd)
			t.Cleanup(func() {
				resetPushTextCommandState()
				resetCobraFlagState(pushTextCmd)
			})

			if err := pushTextCmd.ParseFlags(tt.args); err != nil {
				t.Fatalf("ParseFlags failed: %v", err)
			}
			push, err := resolveTextPush(pushTextCmd, []string{"payload"})
			if err != nil {
				t.Fatalf("resolveTextPush failed: %v", err)
			}
			if push.Payload != "payload" {
				t.Errorf("expected payload from argument, got %q", push.Payload)
			}
			tt.check(t, push)
		})
	}
}

func TestPushSubcommands(t *testing.T) {
	want := map[string]bool{"text": false, "file": false, "url": false}
	for _, c := range PushCmd.Commands() {
		want[c.Name()] = true
	}
	for name, found := range want {
		if !found {
			t.Errorf("push is missing the %s subcommand", name)
		}
	}
}
