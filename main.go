package main

import (
	"net/http"
	"time"

	"github.com/totorewa/roro-chat-api/api"
	"github.com/totorewa/roro-chat-api/constants"
	"github.com/totorewa/roro-chat-api/routes/diagnostics"
	"github.com/totorewa/roro-chat-api/routes/fossabot"
	"github.com/totorewa/roro-chat-api/routes/nightbot"
	"github.com/totorewa/roro-chat-api/state"

	"github.com/infinitybotlist/eureka/zapchi"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func main() {
	state.Setup()

	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer,
		middleware.RealIP,
		middleware.CleanPath,
		zapchi.Logger(state.Logger, "api"),
		middleware.Timeout(30*time.Second),
	)

	routers := []api.APIRouter{
		nightbot.Router{},
		fossabot.Router{},
		diagnostics.Router{},
	}

	for _, router := range routers {
		name, _ := router.Tag()

		if name == "" {
			panic("Router tag name cannot be empty")
		}

		router.Routes(r)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(constants.NotFoundPage))
	})

	err := http.ListenAndServe(state.Config.Meta.Port, r)

	if err != nil {
		state.Logger.Fatal(err)
	}
}
