package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alamin6688/survey-quest-server/db"
	"github.com/alamin6688/survey-quest-server/kafka"
	"github.com/alamin6688/survey-quest-server/model"
	"github.com/alamin6688/survey-quest-server/roles"
)

type PaymentController struct {
	Store    db.Store
	Engine   *roles.Engine
	Producer *kafka.Producer
}

func NewPaymentController(store db.Store, engine *roles.Engine, producer *kafka.Producer) *PaymentController {
	return &PaymentController{Store: store, Engine: engine, Producer: producer}
}

// Create records the payment and promotes the payer to pro-user. Same
// partial-failure policy as survey creation: a committed payment is never
// rolled back when the role update fails.
func (pc *PaymentController) Create(c *fiber.Ctx) error {
	var payment model.Payment
	if err := c.BodyParser(&payment); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}

	res, err := pc.Store.InsertOne(c.Context(), db.Payments, payment)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	pc.Producer.Publish(kafka.TopicPaymentCreated, "payment_created", payment)

	updateUserRole, err := pc.Engine.Apply(c.Context(), payment.Email, roles.EventPaymentCompleted)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"result": res, "updateUserRole": updateUserRole})
}

func (pc *PaymentController) List(c *fiber.Ctx) error {
	var payments []model.Payment
	if err := pc.Store.FindAll(c.Context(), db.Payments, &payments); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	if payments == nil {
		payments = []model.Payment{}
	}
	return c.JSON(payments)
}
