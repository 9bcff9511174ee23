package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/classroom"
)

var errRoomNotFoundInCtx = errors.New("classroom object not found in echo.Context")

type classroomApi struct {
	svc *classroom.Service
}

func registerClassroomAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *classroom.Service) {
	api := classroomApi{svc: svc}

	rg := g.Group("/classrooms", jwt)
	rg.POST("", api.create)
	rg.GET("", api.query)
	rg.DELETE("", api.destroyMultiple)

	// detail endpoints
	dg := rg.Group("/:id", ctxClassroomObjectMiddleware(api.svc))
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
}

// Handlers

func (api *classroomApi) create(ctx echo.Context) error {
	var data classroom.NewClassroom
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewClassroom")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	room, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating classroom")
	}

	return ctx.JSON(http.StatusCreated, room)
}

func (api *classroomApi) query(ctx echo.Context) error {
	filter := new(classroom.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []classroom.Classroom{})
	}
	ordering := new(Ordering)
	ordering.Bind(ctx)
	filter.Orderings = ordering.Orderings

	rooms, err := api.svc.Filter(ctx.Request().Context(), *filter)
	if err != nil {
		return errors.Wrap(err, "querying classrooms")
	}
	if rooms == nil {
		rooms = []classroom.Classroom{}
	}
	return ctx.JSON(http.StatusOK, rooms)
}

func (api *classroomApi) retrieve(ctx echo.Context) error {
	room, ok := ctx.Get("object").(classroom.Classroom)
	if !ok {
		return errors.Wrap(errRoomNotFoundInCtx, "retrieving object from context")
	}
	return ctx.JSON(http.StatusOK, room)
}

func (api *classroomApi) update(ctx echo.Context) error {
	room, ok := ctx.Get("object").(classroom.Classroom)
	if !ok {
		return errors.Wrap(errRoomNotFoundInCtx, "retrieving object from context")
	}

	var data classroom.UpdateClassroom
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateClassroom")
	}
	if err := data.Validate(room); err != nil {
		return err
	}

	room, err := api.svc.Update(ctx.Request().Context(), room, data)
	if err != nil {
		return errors.Wrap(err, "updating classroom")
	}

	return ctx.JSON(http.StatusOK, room)
}

func (api *classroomApi) destroy(ctx echo.Context) error {
	room, ok := ctx.Get("object").(classroom.Classroom)
	if !ok {
		return errors.Wrap(errRoomNotFoundInCtx, "retrieving object from context")
	}

	if err := api.svc.Delete(ctx.Request().Context(), room.ID); err != nil {
		return errors.Wrap(err, "deleting classroom")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *classroomApi) destroyMultiple(ctx echo.Context) error {
	var query DestroyMultipleRequest
	if err := ctx.Bind(&query); err != nil {
		return errors.Wrap(err, "binding to DestroyMultipleRequest")
	}
	if query.IDs == nil {
		return ctx.NoContent(http.StatusNoContent)
	}

	if err := api.svc.Delete(ctx.Request().Context(), query.IDs...); err != nil {
		return errors.Wrap(err, "deleting classrooms")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func ctxClassroomObjectMiddleware(svc *classroom.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			room, err := svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
			if err == nil {
				ctx.Set("object", room)
				return next(ctx)
			} else if errors.Cause(err) != classroom.ErrNotFound {
				return errors.Wrap(err, "finding classroom by ID")
			}
			return errHttpNotFound
		}
	}
}
