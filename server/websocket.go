package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/mobile-next/touchdrag/commands"
	"github.com/mobile-next/touchdrag/frame"
	"github.com/mobile-next/touchdrag/utils"
)

// maxSubscriptionFPS caps drag.subscribe frame rates
const maxSubscriptionFPS = 240

var defaultFPS = 60

type wsConnection struct {
	conn    *websocket.Conn
	writeMu sync.Mutex

	subsMu        sync.Mutex
	subscriptions map[string]context.CancelFunc
	wg            sync.WaitGroup
}

type SubscribeParams struct {
	SessionID string `json:"sessionId"`
	FPS       int    `json:"fps,omitempty"`
}

func newUpgrader(enableCORS bool) *websocket.Upgrader {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}

	if enableCORS {
		upgrader.CheckOrigin = func(r *http.Request) bool {
			return true
		}
	} else {
		upgrader.CheckOrigin = isSameOrigin
	}

	return &upgrader
}

// NewWebSocketHandler returns the handler serving JSON-RPC over WebSocket
func NewWebSocketHandler(enableCORS bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handleWebSocket(w, r, enableCORS)
	})
}

func handleWebSocket(w http.ResponseWriter, r *http.Request, enableCORS bool) {
	conn, err := newUpgrader(enableCORS).Upgrade(w, r, nil)
	if err != nil {
		utils.Warn("WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	wsConn := &wsConnection{
		conn:          conn,
		subscriptions: make(map[string]context.CancelFunc),
	}
	defer wsConn.unsubscribeAll()

	for {
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			// connection closed or error
			utils.Verbose("WebSocket connection closed: %v", err)
			break
		}

		if messageType != websocket.TextMessage {
			_ = wsConn.sendError(nil, ErrCodeInvalidRequest, errTitleInvalidReq, "only text messages accepted for requests")
			continue
		}

		handleWSMessage(wsConn, message)
	}
}

func isSameOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}

	originURL, err := url.Parse(origin)
	if err != nil {
		return false
	}

	return originURL.Host == r.Host
}

func handleWSMessage(wsConn *wsConnection, message []byte) {
	var req JSONRPCRequest
	if err := json.Unmarshal(message, &req); err != nil {
		_ = wsConn.sendError(nil, ErrCodeParseError, errTitleParseError, errMsgParseError)
		return
	}

	if req.JSONRPC != "2.0" {
		_ = wsConn.sendError(req.ID, ErrCodeInvalidRequest, errTitleInvalidReq, errMsgInvalidJSONRPC)
		return
	}

	if req.ID == nil {
		_ = wsConn.sendError(nil, ErrCodeInvalidRequest, errTitleInvalidReq, errMsgIDRequired)
		return
	}

	if req.Method == "" {
		_ = wsConn.sendError(req.ID, ErrCodeInvalidRequest, errTitleInvalidReq, errMsgMethodRequired)
		return
	}

	utils.Verbose("WebSocket Request ID: %v, Method: %s, Params: %s", req.ID, req.Method, string(req.Params))

	handleWSMethodCall(wsConn, req)
}

func handleWSMethodCall(wsConn *wsConnection, req JSONRPCRequest) {
	var result interface{}
	var err error

	switch req.Method {
	case "drag.subscribe":
		result, err = wsConn.subscribe(req.Params)
	case "drag.unsubscribe":
		result, err = wsConn.unsubscribe(req.Params)
	default:
		handler, exists := GetMethodRegistry()[req.Method]
		if !exists {
			_ = wsConn.sendError(req.ID, ErrCodeMethodNotFound, errTitleNotFound, req.Method+" not found")
			return
		}
		result, err = handler(req.Params)
	}

	if err != nil {
		utils.Warn("Error executing method %s: %v", req.Method, err)
		_ = wsConn.sendError(req.ID, errorCode(err), errTitleServer, err.Error())
		return
	}

	_ = wsConn.sendResponse(req.ID, result)
}

// subscribe starts a frame loop on the session that pushes one drag
// notification per frame until unsubscribed or the connection closes.
func (wsc *wsConnection) subscribe(params json.RawMessage) (interface{}, error) {
	if len(params) == 0 {
		return nil, invalidParams("'params' is required with fields: sessionId, fps")
	}

	var p SubscribeParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, invalidParams("invalid parameters: %v. Expected fields: sessionId, fps", err)
	}

	if p.SessionID == "" {
		return nil, invalidParams("'sessionId' is required")
	}

	fps := p.FPS
	if fps == 0 {
		fps = defaultFPS
	}
	if fps < 0 || fps > maxSubscriptionFPS {
		return nil, invalidParams("fps must be between 1 and %d, got %d", maxSubscriptionFPS, fps)
	}

	session, err := commands.FindSession(p.SessionID)
	if err != nil {
		return nil, err
	}

	wsc.subsMu.Lock()
	defer wsc.subsMu.Unlock()

	if _, exists := wsc.subscriptions[p.SessionID]; exists {
		return nil, invalidParams("already subscribed to session %s", p.SessionID)
	}

	// the stream ends with the session, whether closed or evicted
	ctx, cancel := context.WithCancel(session.Context())
	wsc.subscriptions[p.SessionID] = cancel

	wsc.wg.Add(1)
	go func() {
		defer wsc.wg.Done()
		err := session.Loop.Run(ctx, fps, func(f frame.Frame) bool {
			return wsc.sendNotification("drag", dragNotification{SessionID: p.SessionID, Frame: f}) == nil
		})
		if err != nil && ctx.Err() == nil {
			utils.Warn("Drag subscription for %s stopped: %v", p.SessionID, err)
		}

		if session.Context().Err() != nil {
			wsc.removeSubscription(p.SessionID)
			utils.Verbose("Session %s ended, closing its drag subscription", p.SessionID)
			_ = wsc.sendNotification("drag.end", map[string]string{"sessionId": p.SessionID})
		}
	}()

	return map[string]interface{}{
		"sessionId": p.SessionID,
		"fps":       fps,
	}, nil
}

func (wsc *wsConnection) unsubscribe(params json.RawMessage) (interface{}, error) {
	var p SubscribeParams
	if len(params) > 0 {
		if err := json.Unmarshal(params, &p); err != nil {
			return nil, invalidParams("invalid parameters: %v. Expected fields: sessionId", err)
		}
	}

	wsc.subsMu.Lock()
	cancel, exists := wsc.subscriptions[p.SessionID]
	delete(wsc.subscriptions, p.SessionID)
	wsc.subsMu.Unlock()

	if !exists {
		return nil, invalidParams("not subscribed to session %s", p.SessionID)
	}

	cancel()
	return okResponse, nil
}

func (wsc *wsConnection) removeSubscription(id string) {
	wsc.subsMu.Lock()
	defer wsc.subsMu.Unlock()
	delete(wsc.subscriptions, id)
}

func (wsc *wsConnection) unsubscribeAll() {
	wsc.subsMu.Lock()
	for id, cancel := range wsc.subscriptions {
		cancel()
		delete(wsc.subscriptions, id)
	}
	wsc.subsMu.Unlock()

	wsc.wg.Wait()
}

type dragNotification struct {
	SessionID string `json:"sessionId"`
	frame.Frame
}

func (wsc *wsConnection) sendResponse(id interface{}, result interface{}) error {
	response := JSONRPCResponse{
		JSONRPC: "2.0",
		Result:  result,
		ID:      id,
	}
	return wsc.sendJSON(response)
}

func (wsc *wsConnection) sendError(id interface{}, code int, message string, data interface{}) error {
	response := JSONRPCResponse{
		JSONRPC: "2.0",
		Error: map[string]interface{}{
			"code":    code,
			"message": message,
			"data":    data,
		},
		ID: id,
	}
	return wsc.sendJSON(response)
}

func (wsc *wsConnection) sendNotification(method string, params interface{}) error {
	return wsc.sendJSON(JSONRPCNotification{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
	})
}

func (wsc *wsConnection) sendJSON(v interface{}) error {
	wsc.writeMu.Lock()
	defer wsc.writeMu.Unlock()
	return wsc.conn.WriteJSON(v)
}
