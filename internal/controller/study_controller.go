package controller

import (
	"errors"

	"ai-studymate-be/internal/dto"
	"ai-studymate-be/internal/pkg/serverutils"
	"ai-studymate-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IStudyController interface {
	RegisterRoutes(r fiber.Router)
	RecordQuestion(ctx *fiber.Ctx) error
	SubmitFeedback(ctx *fiber.Ctx) error
	GetHistory(ctx *fiber.Ctx) error
	GetProfile(ctx *fiber.Ctx) error
	UpdateProfile(ctx *fiber.Ctx) error
	RefreshProfile(ctx *fiber.Ctx) error
}

type studyController struct {
	profileService service.IStudyProfileService
}

func NewStudyController(profileService service.IStudyProfileService) IStudyController {
	return &studyController{
		profileService: profileService,
	}
}

func (c *studyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/study/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("question", c.RecordQuestion)
	h.Put("question/:id/feedback", c.SubmitFeedback)
	h.Get("history", c.GetHistory)
	h.Get("profile", c.GetProfile)
	h.Put("profile", c.UpdateProfile)
	h.Post("profile/refresh", c.RefreshProfile)
}

func (c *studyController) RecordQuestion(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.RecordQuestionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.profileService.RecordQuestion(ctx.Context(), userId, &req)
	if err != nil {
		if errors.Is(err, service.ErrContextNoteNotOwned) {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "One or more context notes do not exist")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success record question", res))
}

func (c *studyController) SubmitFeedback(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid question id")
	}

	var req dto.QuestionFeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.profileService.SubmitFeedback(ctx.Context(), userId, &req); err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Question not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success submit feedback", nil))
}

func (c *studyController) GetHistory(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	limit := ctx.QueryInt("limit", 0)

	res, err := c.profileService.GetHistory(ctx.Context(), userId, limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get question history", res))
}

func (c *studyController) GetProfile(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.profileService.GetProfile(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get knowledge profile", res))
}

func (c *studyController) UpdateProfile(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.UpdateProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.profileService.UpdateProfile(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update knowledge profile", res))
}

func (c *studyController) RefreshProfile(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.profileService.RefreshFromHistory(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success refresh knowledge profile", res))
}
