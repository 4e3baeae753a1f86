package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bft-labs/redmine/pkg/beans"
	"github.com/bft-labs/redmine/pkg/transport"
	"github.com/bft-labs/redmine/pkg/uri"
)

func newTestApp(t *testing.T, handler http.HandlerFunc) *app {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	b, err := uri.New(srv.URL, "k")
	if err != nil {
		t.Fatalf("uri.New: %v", err)
	}
	tr, err := transport.New(b, beans.DefaultRegistry(), transport.WithObjectsPerPage(2))
	if err != nil {
		t.Fatalf("transport.New: %v", err)
	}
	return &app{log: zerolog.Nop(), transport: tr}
}

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestProjectsList(t *testing.T) {
	var offsets []string
	a := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/projects.json" {
			http.NotFound(w, r)
			return
		}
		offsets = append(offsets, r.URL.Query().Get("offset"))
		if got := r.URL.Query().Get("status"); got != "1" {
			t.Errorf("status param = %q, want 1", got)
		}
		switch r.URL.Query().Get("offset") {
		case "0":
			io.WriteString(w, `{"total_count":3,"projects":[{"id":1,"name":"a"},{"id":2,"name":"b"}]}`)
		default:
			io.WriteString(w, `{"total_count":3,"projects":[{"id":3,"name":"c"}]}`)
		}
	})

	out, err := run(t, projectsCommand(a), "list", "--param", "status=1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if diff := cmp.Diff([]string{"0", "2"}, offsets); diff != "" {
		t.Errorf("offsets mismatch (-want +got):\n%s", diff)
	}

	var got []beans.Project
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(got) != 3 || got[2].Name != "c" {
		t.Errorf("listed %+v", got)
	}
}

func TestProjectsList_BadParam(t *testing.T) {
	a := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s", r.URL)
	})
	if _, err := run(t, projectsCommand(a), "list", "--param", "=x"); err == nil {
		t.Fatal("expected error for parameter without name")
	}
}

func TestProjectsCreate_RequiredFlags(t *testing.T) {
	a := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s", r.URL)
	})
	if _, err := run(t, projectsCommand(a), "create", "--name", "only"); err == nil {
		t.Fatal("expected error for missing --identifier")
	}
}

func TestProjectsCreate(t *testing.T) {
	a := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/projects.json" {
			t.Errorf("request = %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		want := `{"project":{"name":"Demo","identifier":"demo"}}`
		if string(body) != want {
			t.Errorf("body = %s, want %s", body, want)
		}
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"project":{"id":9,"name":"Demo","identifier":"demo"}}`)
	})

	out, err := run(t, projectsCommand(a), "create", "--name", "Demo", "--identifier", "demo")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !strings.Contains(out, `"id": 9`) {
		t.Errorf("output = %s", out)
	}
}

func TestIssuesUpdate(t *testing.T) {
	var put string
	a := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/issues/7.json" {
			http.NotFound(w, r)
			return
		}
		switch r.Method {
		case http.MethodGet:
			io.WriteString(w, `{"issue":{"id":7,"subject":"old","project":{"id":3},"done_ratio":10}}`)
		case http.MethodPut:
			body, _ := io.ReadAll(r.Body)
			put = string(body)
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	})

	out, err := run(t, issuesCommand(a), "update", "7", "--done-ratio", "50")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !strings.Contains(put, `"done_ratio":50`) || !strings.Contains(put, `"subject":"old"`) || !strings.Contains(put, `"project_id":3`) {
		t.Errorf("PUT body = %s", put)
	}

	var got beans.Issue
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if got.DoneRatio != 50 || got.Subject != "old" {
		t.Errorf("printed %+v", got)
	}
}

func TestIssuesUpdate_NonNumericID(t *testing.T) {
	a := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s", r.URL)
	})
	if _, err := run(t, issuesCommand(a), "update", "abc", "--subject", "x"); err == nil {
		t.Fatal("expected error for non-numeric id")
	}
}

func TestIssuesDelete(t *testing.T) {
	var method, path string
	a := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		w.WriteHeader(http.StatusOK)
	})
	if _, err := run(t, issuesCommand(a), "delete", "12"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if method != http.MethodDelete || path != "/issues/12.json" {
		t.Errorf("request = %s %s", method, path)
	}
}
