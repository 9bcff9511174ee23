package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/class"
	"github.com/trezcool/darasa/core/schedule"
)

var errClsNotFoundInCtx = errors.New("class object not found in echo.Context")

type classApi struct {
	svc *class.Service
}

func registerClassAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *class.Service) {
	api := classApi{svc: svc}

	cg := g.Group("/classes", jwt)
	cg.POST("", api.create)
	cg.GET("", api.query)
	cg.DELETE("", api.destroyMultiple)
	cg.GET("/timeslots", api.queryTimeSlots)

	// detail endpoints
	dg := cg.Group("/:id", ctxClassObjectMiddleware(api.svc))
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
}

// ClassResponse augments a Class with its human-readable schedule.
type ClassResponse struct {
	class.Class
	ScheduleDisplay string `json:"schedule_display"`
}

func newClassResponse(cls class.Class) ClassResponse {
	return ClassResponse{Class: cls, ScheduleDisplay: cls.ScheduleDisplay()}
}

// Handlers

func (api *classApi) create(ctx echo.Context) error {
	var data class.NewClass
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewClass")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	cls, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, newClassResponse(cls))
}

func (api *classApi) query(ctx echo.Context) error {
	filter := new(class.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []ClassResponse{})
	}

	classes, err := api.svc.Filter(ctx.Request().Context(), *filter)
	if err != nil {
		return errors.Wrap(err, "querying classes")
	}

	res := make([]ClassResponse, 0, len(classes))
	for _, cls := range classes {
		res = append(res, newClassResponse(cls))
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *classApi) retrieve(ctx echo.Context) error {
	cls, ok := ctx.Get("object").(class.Class)
	if !ok {
		return errors.Wrap(errClsNotFoundInCtx, "retrieving object from context")
	}
	return ctx.JSON(http.StatusOK, newClassResponse(cls))
}

func (api *classApi) update(ctx echo.Context) error {
	cls, ok := ctx.Get("object").(class.Class)
	if !ok {
		return errors.Wrap(errClsNotFoundInCtx, "retrieving object from context")
	}

	var data class.UpdateClass
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateClass")
	}
	if err := data.Validate(cls); err != nil {
		return err
	}

	cls, err := api.svc.Update(ctx.Request().Context(), cls, data)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, newClassResponse(cls))
}

func (api *classApi) destroy(ctx echo.Context) error {
	cls, ok := ctx.Get("object").(class.Class)
	if !ok {
		return errors.Wrap(errClsNotFoundInCtx, "retrieving object from context")
	}

	if err := api.svc.Delete(ctx.Request().Context(), cls.ID); err != nil {
		return errors.Wrap(err, "deleting class")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *classApi) destroyMultiple(ctx echo.Context) error {
	var query DestroyMultipleRequest
	if err := ctx.Bind(&query); err != nil {
		return errors.Wrap(err, "binding to DestroyMultipleRequest")
	}
	if query.IDs == nil {
		return ctx.NoContent(http.StatusNoContent)
	}

	if err := api.svc.Delete(ctx.Request().Context(), query.IDs...); err != nil {
		return errors.Wrap(err, "deleting classes")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// queryTimeSlots lists candidate scheduling windows within a grade's shift.
func (api *classApi) queryTimeSlots(ctx echo.Context) error {
	grade := ctx.QueryParam("grade")
	if _, ok := schedule.ShiftForGrade(grade); !ok {
		return &schedule.UnsupportedGradeError{Grade: grade}
	}

	duration := 0
	if raw := ctx.QueryParam("duration"); raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid duration")
		}
		duration = d
	}

	return ctx.JSON(http.StatusOK, schedule.AvailableSlots(grade, duration))
}

func ctxClassObjectMiddleware(svc *class.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			cls, err := svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
			if err == nil {
				ctx.Set("object", cls)
				return next(ctx)
			} else if errors.Cause(err) != class.ErrNotFound {
				return errors.Wrap(err, "finding class by ID")
			}
			return errHttpNotFound
		}
	}
}
