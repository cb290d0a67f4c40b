// Defines a standard way to define routes
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/totorewa/roro-chat-api/constants"
	"github.com/totorewa/roro-chat-api/state"
)

type Method int

const (
	GET Method = iota
	POST
	PATCH
	PUT
	DELETE
	HEAD
)

// Returns the method as a string
func (m Method) String() string {
	switch m {
	case GET:
		return "GET"
	case POST:
		return "POST"
	case PATCH:
		return "PATCH"
	case PUT:
		return "PUT"
	case DELETE:
		return "DELETE"
	case HEAD:
		return "HEAD"
	}

	panic("Invalid method")
}

// A API Router, not to be confused with Router which routes the actual routes
type APIRouter interface {
	Routes(r Router)
	Tag() (string, string)
}

// Represents a route on the API
type Route struct {
	Method  Method
	Pattern string
	OpId    string
	Handler func(d RouteData, r *http.Request) HttpResponse
	Setup   func()
}

type RouteData struct {
	Context context.Context
}

type HttpResponse struct {
	Status  int
	Data    string
	Headers map[string]string
}

func DefaultResponse(status int) HttpResponse {
	return HttpResponse{Status: status}
}

type Router interface {
	Get(pattern string, h http.HandlerFunc)
	Post(pattern string, h http.HandlerFunc)
	Patch(pattern string, h http.HandlerFunc)
	Put(pattern string, h http.HandlerFunc)
	Delete(pattern string, h http.HandlerFunc)
	Head(pattern string, h http.HandlerFunc)
}

func (r Route) String() string {
	return r.Method.String() + " " + r.Pattern + " (" + r.OpId + ")"
}

func (r Route) Route(ro Router) {
	if r.OpId == "" {
		panic("OpId is empty: " + r.String())
	}

	if r.Handler == nil {
		panic("Handler is nil: " + r.String())
	}

	if r.Pattern == "" {
		panic("Pattern is empty: " + r.String())
	}

	if r.Setup != nil {
		r.Setup()
	}

	handle := func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		resp := make(chan HttpResponse)

		go func() {
			defer func() {
				err := recover()

				if err != nil {
					state.Logger.Error(err)
					resp <- HttpResponse{
						Status: http.StatusInternalServerError,
						Data:   constants.InternalError,
					}
				}
			}()

			resp <- r.Handler(RouteData{
				Context: ctx,
			}, req)
		}()

		respond(ctx, w, resp)
	}

	switch r.Method {
	case GET:
		ro.Get(r.Pattern, handle)
	case POST:
		ro.Post(r.Pattern, handle)
	case PATCH:
		ro.Patch(r.Pattern, handle)
	case PUT:
		ro.Put(r.Pattern, handle)
	case DELETE:
		ro.Delete(r.Pattern, handle)
	case HEAD:
		ro.Head(r.Pattern, handle)
	default:
		panic("Unknown method for route: " + r.String())
	}
}

// respond writes the response as plain text. Error statuses are mapped to 200
// with a chat-friendly body since the bot integrations drop the response body
// on any non-200 status.
func respond(ctx context.Context, w http.ResponseWriter, data chan HttpResponse) {
	select {
	case <-ctx.Done():
		return
	case msg, ok := <-data:
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(constants.InternalError))
			return
		}

		for k, v := range msg.Headers {
			w.Header().Set(k, v)
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")

		if msg.Status == http.StatusUnauthorized || msg.Status == http.StatusForbidden {
			w.WriteHeader(http.StatusOK)
			fmt.Fprintf(w, constants.StatusQuip, msg.Status)
			return
		}

		if msg.Status >= http.StatusBadRequest {
			state.Logger.Errorf("Request failed with status %d: %s", msg.Status, msg.Data)
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(constants.InternalError))
			return
		}

		if msg.Status == 0 {
			msg.Status = http.StatusOK
		}

		w.WriteHeader(msg.Status)
		w.Write([]byte(msg.Data))
	}
}
