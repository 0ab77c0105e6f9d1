package controller

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/alamin6688/survey-quest-server/db"
	"github.com/alamin6688/survey-quest-server/kafka"
	"github.com/alamin6688/survey-quest-server/model"
	"github.com/alamin6688/survey-quest-server/roles"
)

type SurveyController struct {
	Store    db.Store
	Engine   *roles.Engine
	Producer *kafka.Producer
}

func NewSurveyController(store db.Store, engine *roles.Engine, producer *kafka.Producer) *SurveyController {
	return &SurveyController{Store: store, Engine: engine, Producer: producer}
}

func (sc *SurveyController) List(c *fiber.Ctx) error {
	var surveys []model.Survey
	if err := sc.Store.FindAll(c.Context(), db.Surveys, &surveys); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	if surveys == nil {
		surveys = []model.Survey{}
	}
	return c.JSON(surveys)
}

// Create inserts the survey and then promotes its owner to surveyor. The
// two writes are independent: the survey stays committed even if the role
// update fails afterwards.
func (sc *SurveyController) Create(c *fiber.Ctx) error {
	var survey model.Survey
	if err := c.BodyParser(&survey); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}

	res, err := sc.Store.InsertOne(c.Context(), db.Surveys, survey)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	sc.Producer.Publish(kafka.TopicSurveyCreated, "survey_created", survey)

	updateUserRole, err := sc.Engine.Apply(c.Context(), survey.Surverior, roles.EventSurveySubmitted)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"result": res, "updateUserRole": updateUserRole})
}

// Update edits the survey fields a surveyor owns. The vote tally and
// status have their own endpoints and are not touched here.
func (sc *SurveyController) Update(c *fiber.Ctx) error {
	oid, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid id"})
	}

	var survey model.Survey
	if err := c.BodyParser(&survey); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}

	res, err := sc.Store.UpdateOne(c.Context(), db.Surveys, bson.M{"_id": oid}, bson.M{
		"image":       survey.Image,
		"title":       survey.Title,
		"description": survey.Description,
		"category":    survey.Category,
		"deadline":    survey.Deadline,
	})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	if res.MatchedCount == 0 {
		return c.Status(404).JSON(fiber.Map{"message": "survey not found"})
	}
	return c.JSON(res)
}

func (sc *SurveyController) Publish(c *fiber.Ctx) error {
	return sc.setStatus(c, model.StatusPublish)
}

func (sc *SurveyController) Unpublish(c *fiber.Ctx) error {
	return sc.setStatus(c, model.StatusUnpublish)
}

func (sc *SurveyController) setStatus(c *fiber.Ctx, status string) error {
	oid, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid id"})
	}

	res, err := sc.Store.UpdateOne(c.Context(), db.Surveys, bson.M{"_id": oid}, bson.M{"status": status})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	if res.MatchedCount == 0 {
		return c.Status(404).JSON(fiber.Map{"message": "survey not found"})
	}
	return c.JSON(res)
}

// Vote overwrites the survey's tally with the client-computed count and
// appends one participation record. The two writes are reported back
// individually and are not atomic as a pair.
func (sc *SurveyController) Vote(c *fiber.Ctx) error {
	oid, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid id"})
	}

	var body struct {
		VoteCount      int    `json:"voteCount"`
		VotedUserName  string `json:"votedUserName"`
		VotedUserEmail string `json:"votedUserEmail"`
		SurveyID       string `json:"surveyId"`
		UsersVote      string `json:"usersVote"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}

	result1, err := sc.Store.UpdateOne(c.Context(), db.Surveys, bson.M{"_id": oid}, bson.M{"voteCount": body.VoteCount})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	result2, err := sc.Store.InsertOne(c.Context(), db.Participates, model.Participation{
		VotedUserName:  body.VotedUserName,
		VotedUserEmail: body.VotedUserEmail,
		SurveyID:       body.SurveyID,
		UsersVote:      body.UsersVote,
	})
	if err != nil {
		// the tally update above is already committed; surface the append
		// failure on its own
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"result1": result1, "result2": result2})
}

func (sc *SurveyController) Participates(c *fiber.Ctx) error {
	var participates []model.Participation
	if err := sc.Store.FindAll(c.Context(), db.Participates, &participates); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	if participates == nil {
		participates = []model.Participation{}
	}
	return c.JSON(participates)
}
