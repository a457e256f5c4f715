package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"agencycms/internal/content"
	"agencycms/internal/http/middleware"
	"agencycms/internal/model"
	"agencycms/internal/service"
)

type draftErrors struct {
	Header    content.ErrorMap   `json:"header"`
	About     content.ErrorMap   `json:"about"`
	Portfolio []content.ErrorMap `json:"portfolio"`
}

// draftView is the admin dashboard's working state: the editable document
// plus everything needed to render dirty markers and field errors.
type draftView struct {
	Document         *model.ContentDocument `json:"document"`
	HasChanges       bool                   `json:"hasChanges"`
	PendingDeletions []string               `json:"pendingDeletions"`
	Saving           bool                   `json:"saving"`
	Errors           draftErrors            `json:"errors"`
}

func viewOf(d *content.Draft) draftView {
	header, about, portfolio := d.FieldErrors()
	if header == nil {
		header = content.ErrorMap{}
	}
	if about == nil {
		about = content.ErrorMap{}
	}
	if portfolio == nil {
		portfolio = []content.ErrorMap{}
	}
	deletions := d.PendingDeletions()
	if deletions == nil {
		deletions = []string{}
	}
	return draftView{
		Document:         d.Document(),
		HasChanges:       d.HasChanges(),
		PendingDeletions: deletions,
		Saving:           d.Saving(),
		Errors:           draftErrors{Header: header, About: about, Portfolio: portfolio},
	}
}

func sessionToken(c *fiber.Ctx) string {
	s, _ := c.Locals(middleware.SessionTokenLocalKey).(string)
	return s
}

func sessionUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(middleware.SessionUserIDLocalKey).(string)
	return s
}

func sessionEmail(c *fiber.Ctx) string {
	s, _ := c.Locals(middleware.SessionEmailLocalKey).(string)
	return s
}

// draftForSession returns the session's open draft, loading a fresh
// document to seed one on first access.
func draftForSession(c *fiber.Ctx, deps Deps) (*content.Draft, error) {
	token := sessionToken(c)
	if d, ok := deps.Drafts.Get(token); ok {
		return d, nil
	}
	doc, err := deps.Content.Load(c.UserContext())
	if err != nil {
		return nil, err
	}
	return deps.Drafts.Open(token, doc), nil
}

func registerAdminRoutes(r fiber.Router, deps Deps) {
	r.Get("/draft", func(c *fiber.Ctx) error {
		d, err := draftForSession(c, deps)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(viewOf(d))
	})

	r.Post("/draft/ops", func(c *fiber.Ctx) error {
		var op content.Op
		if err := c.BodyParser(&op); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}
		d, err := draftForSession(c, deps)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		if err := d.Apply(op); err != nil {
			switch {
			case errors.Is(err, content.ErrNotConfirmed):
				return writeError(c, fiber.StatusBadRequest, "CONFIRMATION_REQUIRED", err.Error())
			case errors.Is(err, content.ErrIndexOutOfRange):
				return writeError(c, fiber.StatusBadRequest, "INVALID_INDEX", err.Error())
			default:
				return writeError(c, fiber.StatusBadRequest, "INVALID_OP", err.Error())
			}
		}
		return c.JSON(viewOf(d))
	})

	r.Post("/draft/discard", func(c *fiber.Ctx) error {
		var req struct {
			Confirmed bool `json:"confirmed"`
		}
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}
		d, err := draftForSession(c, deps)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		if err := d.Discard(req.Confirmed); err != nil {
			return writeError(c, fiber.StatusBadRequest, "CONFIRMATION_REQUIRED", err.Error())
		}
		return c.JSON(viewOf(d))
	})

	r.Post("/save", func(c *fiber.Ctx) error {
		d, err := draftForSession(c, deps)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		result, err := deps.Content.Save(c.UserContext(), d, sessionEmail(c))
		if err != nil {
			if errors.Is(err, content.ErrSaveInProgress) {
				return writeError(c, fiber.StatusConflict, "SAVE_IN_PROGRESS", err.Error())
			}
			var saveErr *service.SaveError
			if errors.As(err, &saveErr) {
				code := "SAVE_FAILED"
				if saveErr.PermissionDenied {
					code = "PERMISSION_DENIED"
				}
				completed := []string{}
				if result != nil {
					completed = result.Steps
				}
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"request_id": requestIDFromCtx(c),
					"error": fiber.Map{
						"code":    code,
						"message": saveErr.Message,
					},
					"step":           saveErr.Step,
					"detail":         saveErr.Detail,
					"hint":           saveErr.Hint,
					"dbCode":         saveErr.Code,
					"completedSteps": completed,
				})
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		if result.Validation != nil && !result.Validation.IsValid {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"valid":           false,
				"firstInvalidTab": result.Validation.FirstInvalidTab(),
				"errors": draftErrors{
					Header:    result.Validation.Header,
					About:     result.Validation.About,
					Portfolio: result.Validation.Portfolio,
				},
			})
		}

		return c.JSON(fiber.Map{
			"document": result.Document,
			"steps":    result.Steps,
		})
	})

	r.Post("/uploads", func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}
		fieldID := c.FormValue("fieldId")

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		up, err := deps.Media.UploadImage(c.UserContext(), f, fh.Filename, ct, fh.Size, fieldID)
		if err != nil {
			if errors.Is(err, service.ErrUnsupportedImage) {
				return writeError(c, fiber.StatusBadRequest, "UNSUPPORTED_TYPE", "unsupported image type")
			}
			return writeError(c, fiber.StatusInternalServerError, "UPLOAD_FAILED", "upload failed")
		}
		return c.Status(fiber.StatusCreated).JSON(up)
	})

	r.Delete("/uploads", func(c *fiber.Ctx) error {
		var req struct {
			Key string `json:"key"`
		}
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}
		if err := deps.Media.RemoveImage(c.UserContext(), req.Key); err != nil {
			if errors.Is(err, service.ErrInvalidMediaKey) {
				return writeError(c, fiber.StatusBadRequest, "INVALID_KEY", "key is outside the uploads prefix")
			}
			return writeError(c, fiber.StatusInternalServerError, "DELETE_FAILED", "delete failed")
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	r.Post("/uploads/icon", func(c *fiber.Ctx) error {
		var req struct {
			Icon string `json:"icon"`
		}
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}
		icon, err := deps.Media.UploadIcon(req.Icon)
		if err != nil {
			return writeError(c, fiber.StatusUnprocessableEntity, "UNSAFE_SVG", "svg contains active content")
		}
		return c.JSON(fiber.Map{"icon": icon})
	})

	r.Get("/audit", func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "20"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		entries, count, err := deps.Content.RecentActivity(c.UserContext(), limit)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{
			"entries":           entries,
			"changesLast30Days": count,
		})
	})

	r.Get("/profile", func(c *fiber.Ctx) error {
		p, err := deps.Profile.Get(c.UserContext(), sessionUserID(c))
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(p)
	})

	r.Put("/profile", func(c *fiber.Ctx) error {
		var p model.Profile
		if err := c.BodyParser(&p); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}
		p.ID = sessionUserID(c)
		stored, err := deps.Profile.Update(c.UserContext(), sessionEmail(c), &p)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(stored)
	})

	r.Get("/prefs/theme", func(c *fiber.Ctx) error {
		theme, err := deps.Themes.Get(c.UserContext(), sessionUserID(c))
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"theme": theme})
	})

	r.Put("/prefs/theme", func(c *fiber.Ctx) error {
		var req struct {
			Theme string `json:"theme"`
		}
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}
		if err := deps.Themes.Set(c.UserContext(), sessionUserID(c), req.Theme); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_THEME", "theme must be light or dark")
		}
		return c.JSON(fiber.Map{"theme": req.Theme})
	})
}
