package fixture

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ib-77/ropkit/pkg/orders"
)

var ErrInvalidFixture = errors.New("invalid fixture")

type fileDTO struct {
	Users  []userDTO  `yaml:"users"`
	Orders []orderDTO `yaml:"orders"`
}

type userDTO struct {
	ID    uint32 `yaml:"id"`
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

type orderDTO struct {
	UserID uint32  `yaml:"user_id"`
	Amount float64 `yaml:"amount"`
	Status string  `yaml:"status"`
}

// Fixture is a user registry plus the orders to check against it.
type Fixture struct {
	Registry *orders.Registry
	Orders   []orders.Order
}

func Load(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read fixture %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return Fixture{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a YAML document with top-level "users" and "orders" lists.
// Unknown fields are rejected.
func Parse(data []byte) (Fixture, error) {
	var dto fileDTO
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil && !errors.Is(err, io.EOF) {
		return Fixture{}, errors.Join(ErrInvalidFixture, err)
	}
	return toDomain(dto)
}

func toDomain(dto fileDTO) (Fixture, error) {
	users := make([]orders.User, 0, len(dto.Users))
	for _, u := range dto.Users {
		users = append(users, orders.User{ID: u.ID, Name: u.Name, Email: u.Email})
	}

	registry, err := orders.NewRegistry(users...)
	if err != nil {
		return Fixture{}, errors.Join(ErrInvalidFixture, err)
	}

	list := make([]orders.Order, 0, len(dto.Orders))
	for _, o := range dto.Orders {
		list = append(list, orders.Order{UserID: o.UserID, Amount: o.Amount, Status: o.Status})
	}

	return Fixture{Registry: registry, Orders: list}, nil
}
