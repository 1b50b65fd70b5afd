// Package generator builds the synthetic collections. Every factory is a
// method on Generator and produces records in memory; persistence happens
// between stages in Run so earlier outputs survive a later failure.
package generator

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/brianvoe/gofakeit/v6"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Lumos-Labs-HQ/seedforge/internal/schema"
)

// demoPassword is the throwaway credential baked into every generated
// account so demo environments have a known login.
const demoPassword = "password123"

type Generator struct {
	schema *schema.Schema
	vol    schema.Volumes
	faker  *gofakeit.Faker
}

// New wires a generator with an explicit faker instance. Callers that need
// reproducible output can pass a seeded faker.
func New(sch *schema.Schema, vol schema.Volumes, f *gofakeit.Faker) *Generator {
	return &Generator{
		schema: sch,
		vol:    vol,
		faker:  f,
	}
}

// newID returns a fresh ObjectID hex string. Collections reference each
// other exclusively through these ids.
func newID() string {
	return primitive.NewObjectID().Hex()
}

// hashPassword produces a bcrypt-shaped placeholder hash for synthetic
// accounts.
func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return "$2b$10$" + hex.EncodeToString(sum[:])[:53]
}
