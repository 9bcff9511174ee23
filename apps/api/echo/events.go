package echoapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/darasa/core"
)

type eventsApi struct {
	events core.EventBus
}

func registerEventsAPI(g *echo.Group, jwt echo.MiddlewareFunc, events core.EventBus) {
	api := eventsApi{events: events}
	g.GET("/events", api.stream, jwt)
}

// stream pushes change events to the client over Server-Sent Events so open
// dashboards reflect writes from other sessions without refreshing. An
// optional ?collection= query param limits the stream to one collection.
func (api *eventsApi) stream(ctx echo.Context) error {
	collection := ctx.QueryParam("collection")

	res := ctx.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	ch, cancel := api.events.Subscribe()
	defer cancel()

	ping := time.NewTicker(30 * time.Second)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Request().Context().Done():
			return nil
		case evt := <-ch:
			if collection != "" && evt.Collection != collection {
				continue
			}
			data, err := json.Marshal(evt)
			if err != nil {
				continue
			}
			_, _ = fmt.Fprintf(res, "event: %s\ndata: %s\n\n", evt.Collection, data)
			res.Flush()
		case <-ping.C:
			// keep proxies from closing the connection
			_, _ = fmt.Fprint(res, ": ping\n\n")
			res.Flush()
		}
	}
}
