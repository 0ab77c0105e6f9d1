package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alamin6688/survey-quest-server/db"
	"github.com/alamin6688/survey-quest-server/model"
)

// FeedbackController covers comments and reports. Both are plain
// append-and-list collections.
type FeedbackController struct {
	Store db.Store
}

func NewFeedbackController(store db.Store) *FeedbackController {
	return &FeedbackController{Store: store}
}

func (fc *FeedbackController) CreateComment(c *fiber.Ctx) error {
	var comment model.Comment
	if err := c.BodyParser(&comment); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}

	res, err := fc.Store.InsertOne(c.Context(), db.Comments, comment)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(res)
}

func (fc *FeedbackController) ListComments(c *fiber.Ctx) error {
	var comments []model.Comment
	if err := fc.Store.FindAll(c.Context(), db.Comments, &comments); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	if comments == nil {
		comments = []model.Comment{}
	}
	return c.JSON(comments)
}

func (fc *FeedbackController) CreateReport(c *fiber.Ctx) error {
	var report model.Report
	if err := c.BodyParser(&report); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}

	res, err := fc.Store.InsertOne(c.Context(), db.Reports, report)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(res)
}

func (fc *FeedbackController) ListReports(c *fiber.Ctx) error {
	var reports []model.Report
	if err := fc.Store.FindAll(c.Context(), db.Reports, &reports); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	if reports == nil {
		reports = []model.Report{}
	}
	return c.JSON(reports)
}
