package controller

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/alamin6688/survey-quest-server/cache"
	"github.com/alamin6688/survey-quest-server/db"
	"github.com/alamin6688/survey-quest-server/kafka"
	"github.com/alamin6688/survey-quest-server/model"
)

type UserController struct {
	Store    db.Store
	Roles    *cache.RoleCache
	Producer *kafka.Producer
}

func NewUserController(store db.Store, roles *cache.RoleCache, producer *kafka.Producer) *UserController {
	return &UserController{Store: store, Roles: roles, Producer: producer}
}

// Register is idempotent per email: a second registration reports the
// existing user and leaves the record (including its role) untouched.
func (uc *UserController) Register(c *fiber.Ctx) error {
	var user model.User
	if err := c.BodyParser(&user); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}

	var existing model.User
	err := uc.Store.FindOne(c.Context(), db.Users, bson.M{"email": user.Email}, &existing)
	if err == nil {
		return c.JSON(fiber.Map{"message": "User already exist"})
	}
	if err != db.ErrNotFound {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	res, err := uc.Store.InsertOne(c.Context(), db.Users, user)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(res)
}

func (uc *UserController) List(c *fiber.Ctx) error {
	var users []model.User
	if err := uc.Store.FindAll(c.Context(), db.Users, &users); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	if users == nil {
		users = []model.User{}
	}
	return c.JSON(users)
}

// MakeProUser and MakeUser are operator overrides. They set the role
// unconditionally, with no admin guard: unlike the transition engine they
// can demote an admin, and that asymmetry is kept on purpose.
func (uc *UserController) MakeProUser(c *fiber.Ctx) error {
	return uc.setRole(c, model.RoleProUser)
}

func (uc *UserController) MakeUser(c *fiber.Ctx) error {
	return uc.setRole(c, model.RoleUser)
}

func (uc *UserController) setRole(c *fiber.Ctx, role string) error {
	oid, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid id"})
	}

	// the cached role entry is keyed by email, so resolve it before
	// writing; updating past a failed read would leave a stale entry
	var user model.User
	err = uc.Store.FindOne(c.Context(), db.Users, bson.M{"_id": oid}, &user)
	if err != nil && err != db.ErrNotFound {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	res, err := uc.Store.UpdateOne(c.Context(), db.Users, bson.M{"_id": oid}, bson.M{"role": role})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	if user.Email != "" {
		uc.Roles.Invalidate(c.Context(), user.Email)
		uc.Producer.Publish(kafka.TopicRoleUpdated, "user_role_updated", map[string]any{
			"email": user.Email,
			"role":  role,
			"event": "admin_override",
		})
	}
	return c.JSON(res)
}

// Role predicate endpoints. Each responds with a boolean keyed to its own
// role name, and only for the caller's own email.
func (uc *UserController) IsAdmin(c *fiber.Ctx) error {
	return uc.hasRole(c, "admin", model.RoleAdmin)
}

func (uc *UserController) IsProUser(c *fiber.Ctx) error {
	return uc.hasRole(c, "proUser", model.RoleProUser)
}

func (uc *UserController) IsSurveyor(c *fiber.Ctx) error {
	return uc.hasRole(c, "surveyor", model.RoleSurveyor)
}

func (uc *UserController) IsUser(c *fiber.Ctx) error {
	return uc.hasRole(c, "user", model.RoleUser)
}

func (uc *UserController) hasRole(c *fiber.Ctx, key, role string) error {
	email := c.Params("email")
	if email != c.Locals("user_email") {
		return c.Status(403).JSON(fiber.Map{"message": "Forbidden access"})
	}

	current, ok := uc.Roles.GetRole(c.Context(), email)
	if !ok {
		var user model.User
		err := uc.Store.FindOne(c.Context(), db.Users, bson.M{"email": email}, &user)
		if err != nil && err != db.ErrNotFound {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		// a missing user simply has no role; the predicate is false
		current = user.Role
		if err == nil {
			uc.Roles.SetRole(c.Context(), email, current)
		}
	}

	return c.JSON(fiber.Map{key: current == role})
}
