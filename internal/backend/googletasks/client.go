// Package googletasks implements service.Mirror using the Google Tasks API.
package googletasks

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	tasks "google.golang.org/api/tasks/v1"

	"todobox/internal/auth"
	"todobox/internal/config"
	"todobox/internal/service"
	"todobox/internal/todo"
)

const (
	// PageSize is the number of items requested per API page.
	PageSize = 100

	// APITimeout is the timeout for API calls.
	APITimeout = 5 * time.Second

	// markerPrefix tags remote tasks created by push with the local id.
	markerPrefix = "todobox:id="

	statusOpen      = "needsAction"
	statusCompleted = "completed"
)

// Client implements service.Mirror using Google Tasks API.
type Client struct {
	svc *tasks.Service
	log logrus.FieldLogger
}

// New creates a new Google Tasks client.
// Requires oauth_client.json and token.json to exist.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	oauthConfig, err := auth.LoadConfig(cfg)
	if err != nil {
		return nil, err
	}
	token, err := auth.LoadToken(cfg)
	if err != nil {
		return nil, err
	}

	// Token source refreshes automatically
	httpClient := oauth2.NewClient(ctx, oauthConfig.TokenSource(ctx, token))

	c, err := NewWithHTTPClient(ctx, httpClient)
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}
	c.log = cfg.Logger()
	return c, nil
}

// NewWithHTTPClient creates a client with a custom HTTP client. Extra options
// such as option.WithEndpoint are passed to the API client (for testing).
func NewWithHTTPClient(ctx context.Context, httpClient *http.Client, opts ...option.ClientOption) (*Client, error) {
	opts = append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)
	svc, err := tasks.NewService(ctx, opts...)
	if err != nil {
		return nil, err
	}
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	return &Client{svc: svc, log: l}, nil
}

// Push makes the remote list called listName mirror the local task list.
// Remote tasks carrying a todobox marker are created, patched or deleted to
// match; tasks without a marker are left alone.
func (c *Client) Push(ctx context.Context, listName string, pending, completed []todo.Task) (service.PushResult, error) {
	var result service.PushResult

	listID, err := c.resolveOrCreateList(ctx, listName)
	if err != nil {
		return result, err
	}

	remote, extras, err := c.markedTasks(ctx, listID)
	if err != nil {
		return result, err
	}

	want := make(map[int]bool, len(pending)+len(completed))
	sync := func(t todo.Task, status string) error {
		want[t.ID] = true
		existing, ok := remote[t.ID]
		switch {
		case !ok:
			if err := c.insertTask(ctx, listID, t, status); err != nil {
				return err
			}
			result.Created++
		case existing.Title != t.Task || existing.Status != status:
			if err := c.patchTask(ctx, listID, existing.Id, t, status); err != nil {
				return err
			}
			result.Updated++
		default:
			result.Unchanged++
		}
		return nil
	}

	for _, t := range pending {
		if err := sync(t, statusOpen); err != nil {
			return result, err
		}
	}
	for _, t := range completed {
		if err := sync(t, statusCompleted); err != nil {
			return result, err
		}
	}

	for id, rt := range remote {
		if want[id] {
			continue
		}
		extras = append(extras, rt)
	}
	for _, rt := range extras {
		if err := c.deleteTask(ctx, listID, rt.Id); err != nil {
			return result, err
		}
		result.Deleted++
	}

	c.log.WithFields(logrus.Fields{
		"list":      listName,
		"created":   result.Created,
		"updated":   result.Updated,
		"deleted":   result.Deleted,
		"unchanged": result.Unchanged,
	}).Debug("push: done")
	return result, nil
}

// resolveOrCreateList finds a list by name (case-insensitive, trimmed),
// creating it when absent.
func (c *Client) resolveOrCreateList(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	nameLower := strings.ToLower(name)

	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	var matches []string
	err := c.svc.Tasklists.List().MaxResults(PageSize).Pages(ctx, func(resp *tasks.TaskLists) error {
		for _, list := range resp.Items {
			if strings.ToLower(strings.TrimSpace(list.Title)) == nameLower {
				matches = append(matches, list.Id)
			}
		}
		return nil
	})
	if err != nil {
		return "", wrapError(err)
	}

	switch len(matches) {
	case 0:
		created, err := c.svc.Tasklists.Insert(&tasks.TaskList{Title: name}).Context(ctx).Do()
		if err != nil {
			return "", wrapError(err)
		}
		c.log.WithField("list", name).Debug("push: created list")
		return created.Id, nil
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("ambiguous list name: %s", name)
	}
}

// markedTasks returns remote tasks carrying a todobox marker, keyed by local
// id. When several carry the same id the first one listed is kept and the
// rest are returned as extras.
func (c *Client) markedTasks(ctx context.Context, listID string) (map[int]*tasks.Task, []*tasks.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	out := make(map[int]*tasks.Task)
	var extras []*tasks.Task
	err := c.svc.Tasks.List(listID).
		MaxResults(PageSize).
		ShowCompleted(true).
		ShowHidden(true).
		ShowDeleted(false).
		Pages(ctx, func(resp *tasks.Tasks) error {
			for _, t := range resp.Items {
				id, ok := parseMarker(t.Notes)
				if !ok {
					continue
				}
				if _, dup := out[id]; dup {
					extras = append(extras, t)
					continue
				}
				out[id] = t
			}
			return nil
		})
	if err != nil {
		return nil, nil, wrapError(err)
	}
	return out, extras, nil
}

func (c *Client) insertTask(ctx context.Context, listID string, t todo.Task, status string) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	_, err := c.svc.Tasks.Insert(listID, &tasks.Task{
		Title:  t.Task,
		Notes:  marker(t.ID),
		Status: status,
	}).Context(ctx).Do()
	return wrapError(err)
}

func (c *Client) patchTask(ctx context.Context, listID, remoteID string, t todo.Task, status string) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	patch := &tasks.Task{Title: t.Task, Status: status}
	if status == statusOpen {
		// Reopening requires clearing the completion timestamp.
		patch.NullFields = []string{"Completed"}
	}
	_, err := c.svc.Tasks.Patch(listID, remoteID, patch).Context(ctx).Do()
	return wrapError(err)
}

func (c *Client) deleteTask(ctx context.Context, listID, remoteID string) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	return wrapError(c.svc.Tasks.Delete(listID, remoteID).Context(ctx).Do())
}

func marker(id int) string {
	return markerPrefix + strconv.Itoa(id)
}

// parseMarker extracts the local id from a remote task's notes.
func parseMarker(notes string) (int, bool) {
	for _, line := range strings.Split(notes, "\n") {
		rest, ok := strings.CutPrefix(strings.TrimSpace(line), markerPrefix)
		if !ok {
			continue
		}
		id, err := strconv.Atoi(rest)
		if err != nil || id < 1 {
			return 0, false
		}
		return id, true
	}
	return 0, false
}

// wrapError wraps API errors with user-friendly messages. Rejected
// credentials wrap service.ErrAuth.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "context deadline exceeded") {
		return fmt.Errorf("request timed out")
	}

	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		return fmt.Errorf("%w (run: todobox login)", service.ErrAuth)
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w (run: todobox login)", service.ErrAuth)
		case http.StatusNotFound:
			return fmt.Errorf("not found")
		}
	}

	return err
}
