package service

import "errors"

// ErrAuth is wrapped by Mirror errors caused by missing, expired or revoked
// credentials.
var ErrAuth = errors.New("token expired or revoked")

// PushResult counts the remote changes made by Mirror.Push.
type PushResult struct {
	Created   int
	Updated   int
	Deleted   int
	Unchanged int
}
