package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/tienda/app/models"
	"github.com/shashiranjanraj/tienda/app/repositories"
	"github.com/shashiranjanraj/tienda/pkg/hash"
	"github.com/shashiranjanraj/tienda/pkg/httperr"
)

// CrearUsuarioInput is the request body for user creation.
type CrearUsuarioInput struct {
	Nombre     string `json:"nombre"     validate:"required,between=2,100"`
	Email      string `json:"email"      validate:"required,email,max=100"`
	Contrasena string `json:"contrasena" validate:"required,between=6,255"`
}

// ActualizarUsuarioInput is the request body for a partial user update.
// Nil fields are left untouched.
type ActualizarUsuarioInput struct {
	Nombre     *string `json:"nombre"     validate:"nullable,between=2,100"`
	Email      *string `json:"email"      validate:"nullable,email,max=100"`
	Contrasena *string `json:"contrasena" validate:"nullable,between=6,255"`
}

// UsuarioService implements the user operations. Password hashing is an
// explicit step here, before persistence, never a model lifecycle hook.
type UsuarioService struct {
	usuarios *repositories.UsuarioRepository
}

func NewUsuarioService(db *gorm.DB) *UsuarioService {
	return &UsuarioService{usuarios: repositories.NewUsuarioRepository(db)}
}

// Crear stores a new user with the password hashed.
func (s *UsuarioService) Crear(input CrearUsuarioInput) (models.Usuario, error) {
	taken, err := s.usuarios.EmailTaken(input.Email, 0)
	if err != nil {
		return models.Usuario{}, err
	}
	if taken {
		return models.Usuario{}, httperr.Conflict("This email is already registered")
	}

	hashed, err := hash.Make(input.Contrasena)
	if err != nil {
		return models.Usuario{}, err
	}

	usuario := models.Usuario{
		Nombre:     input.Nombre,
		Email:      input.Email,
		Contrasena: hashed,
	}
	if err := s.usuarios.Create(&usuario); err != nil {
		return models.Usuario{}, err
	}
	return usuario, nil
}

// Todos returns every user ordered by id ascending.
func (s *UsuarioService) Todos() ([]models.Usuario, error) {
	return s.usuarios.All()
}

// PorID returns the user or a 404 error.
func (s *UsuarioService) PorID(id uint) (models.Usuario, error) {
	usuario, err := s.usuarios.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Usuario{}, httperr.NotFound("User not found")
		}
		return models.Usuario{}, err
	}
	return usuario, nil
}

// Actualizar applies the supplied subset of fields to the user. A new
// password is re-hashed; the returned record is re-read from storage so
// the response always goes through the standard serialization path.
func (s *UsuarioService) Actualizar(id uint, input ActualizarUsuarioInput) (models.Usuario, error) {
	usuario, err := s.PorID(id)
	if err != nil {
		return models.Usuario{}, err
	}

	columns := map[string]interface{}{}
	if input.Nombre != nil {
		columns["nombre"] = *input.Nombre
	}
	if input.Email != nil {
		taken, err := s.usuarios.EmailTaken(*input.Email, id)
		if err != nil {
			return models.Usuario{}, err
		}
		if taken {
			return models.Usuario{}, httperr.Conflict("This email is already registered")
		}
		columns["email"] = *input.Email
	}
	if input.Contrasena != nil {
		hashed, err := hash.Make(*input.Contrasena)
		if err != nil {
			return models.Usuario{}, err
		}
		columns["contrasena"] = hashed
	}

	if len(columns) > 0 {
		if err := s.usuarios.UpdateColumns(&usuario, columns); err != nil {
			return models.Usuario{}, err
		}
	}

	return s.usuarios.FindByID(id)
}

// Eliminar removes the user and, with it, all of their orders.
func (s *UsuarioService) Eliminar(id uint) error {
	if _, err := s.PorID(id); err != nil {
		return err
	}
	return s.usuarios.Delete(id)
}

// Pedidos returns the user's summary and their orders, newest first.
func (s *UsuarioService) Pedidos(id uint) (models.UsuarioResumen, []models.Pedido, error) {
	usuario, err := s.PorID(id)
	if err != nil {
		return models.UsuarioResumen{}, nil, err
	}

	pedidos, err := s.usuarios.PedidosOf(id)
	if err != nil {
		return models.UsuarioResumen{}, nil, err
	}
	return usuario.Resumen(), pedidos, nil
}
