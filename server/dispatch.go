package server

import (
	"encoding/json"
	"errors"
	"fmt"
)

// HandlerFunc is the signature for non-streaming JSON-RPC method handlers
type HandlerFunc func(params json.RawMessage) (interface{}, error)

// wsOnlyMethods need a persistent connection and are rejected on /rpc
var wsOnlyMethods = map[string]struct{}{
	"drag.subscribe":   {},
	"drag.unsubscribe": {},
}

// GetMethodRegistry returns a map of method names to handler functions
// This is used by both the HTTP server and embedded clients
func GetMethodRegistry() map[string]HandlerFunc {
	return map[string]HandlerFunc{
		"server.info":     handleServerInfo,
		"server.shutdown": handleServerShutdown,
		"session.create":  handleSessionCreate,
		"session.close":   handleSessionClose,
		"session.list":    handleSessionList,
		"touch.ingest":    handleTouchIngest,
		"touch.drag":      handleTouchDrag,
		"touch.fingers":   handleTouchFingers,
		"replay":          handleReplay,
	}
}

// Execute dispatches a method call using the registry
// This is the main entry point for embedded clients
func Execute(method string, params json.RawMessage) (interface{}, error) {
	registry := GetMethodRegistry()

	handler, exists := registry[method]
	if !exists {
		return nil, fmt.Errorf("method not found: %s", method)
	}

	return handler(params)
}

// paramsError marks errors caused by the caller's params
type paramsError struct {
	msg string
}

func (e *paramsError) Error() string {
	return e.msg
}

func invalidParams(format string, args ...interface{}) error {
	return &paramsError{msg: fmt.Sprintf(format, args...)}
}

func errorCode(err error) int {
	var pe *paramsError
	if errors.As(err, &pe) {
		return ErrCodeInvalidParams
	}
	return ErrCodeServerError
}
