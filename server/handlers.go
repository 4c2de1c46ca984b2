package server

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mobile-next/touchdrag/commands"
	"github.com/mobile-next/touchdrag/types"
)

type SessionParams struct {
	SessionID string `json:"sessionId"`
}

type TouchIngestParams struct {
	SessionID string             `json:"sessionId"`
	Events    []types.TouchPoint `json:"events"`
}

type ReplayParams struct {
	Path string `json:"path"`
}

func handleServerInfo(params json.RawMessage) (interface{}, error) {
	sessionCount := 0
	if registry := commands.GetRegistry(); registry != nil {
		sessionCount = registry.Len()
	}

	return map[string]interface{}{
		"name":     "touchdrag",
		"version":  Version,
		"sessions": sessionCount,
		"uptime":   time.Since(startedAt).Round(time.Second).String(),
		"fps":      defaultFPS,
	}, nil
}

func handleServerShutdown(params json.RawMessage) (interface{}, error) {
	requestShutdown()
	return okResponse, nil
}

func handleSessionCreate(params json.RawMessage) (interface{}, error) {
	var req commands.SessionCreateRequest
	if len(params) > 0 {
		if err := json.Unmarshal(params, &req); err != nil {
			return nil, invalidParams("invalid parameters: %v. Expected fields: name, speed, sensitivity, bounds", err)
		}
	}

	return resultOf(commands.SessionCreateCommand(req))
}

func parseSessionParams(params json.RawMessage) (SessionParams, error) {
	var p SessionParams
	if len(params) == 0 {
		return p, invalidParams("'params' is required with fields: sessionId")
	}

	if err := json.Unmarshal(params, &p); err != nil {
		return p, invalidParams("invalid parameters: %v. Expected fields: sessionId", err)
	}

	if p.SessionID == "" {
		return p, invalidParams("'sessionId' is required")
	}

	return p, nil
}

func handleSessionClose(params json.RawMessage) (interface{}, error) {
	p, err := parseSessionParams(params)
	if err != nil {
		return nil, err
	}

	if _, err := resultOf(commands.SessionCloseCommand(p.SessionID)); err != nil {
		return nil, err
	}
	return okResponse, nil
}

func handleSessionList(params json.RawMessage) (interface{}, error) {
	return resultOf(commands.SessionListCommand())
}

func handleTouchIngest(params json.RawMessage) (interface{}, error) {
	if len(params) == 0 {
		return nil, invalidParams("'params' is required with fields: sessionId, events")
	}

	var p TouchIngestParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, invalidParams("invalid parameters: %v. Expected fields: sessionId, events", err)
	}

	if p.SessionID == "" {
		return nil, invalidParams("'sessionId' is required")
	}

	return resultOf(commands.TouchCommand(commands.TouchRequest{
		SessionID: p.SessionID,
		Events:    p.Events,
	}))
}

func handleTouchDrag(params json.RawMessage) (interface{}, error) {
	p, err := parseSessionParams(params)
	if err != nil {
		return nil, err
	}

	return resultOf(commands.DragCommand(commands.DragRequest{SessionID: p.SessionID}))
}

func handleTouchFingers(params json.RawMessage) (interface{}, error) {
	p, err := parseSessionParams(params)
	if err != nil {
		return nil, err
	}

	return resultOf(commands.FingersCommand(commands.FingersRequest{SessionID: p.SessionID}))
}

func handleReplay(params json.RawMessage) (interface{}, error) {
	if len(params) == 0 {
		return nil, invalidParams("'params' is required with fields: path")
	}

	var p ReplayParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, invalidParams("invalid parameters: %v. Expected fields: path", err)
	}

	if p.Path == "" {
		return nil, invalidParams("'path' is required")
	}

	return resultOf(commands.ReplayCommand(commands.ReplayRequest{Path: p.Path}))
}

// resultOf unwraps a command response into a JSON-RPC result or error
func resultOf(response *commands.CommandResponse) (interface{}, error) {
	if response.Status == "error" {
		return nil, fmt.Errorf("%s", response.Error)
	}
	return response.Data, nil
}
