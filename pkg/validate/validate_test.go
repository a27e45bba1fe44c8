package validate_test

import (
	"testing"

	"github.com/shashiranjanraj/tienda/pkg/validate"
)

type crearUsuarioInput struct {
	Nombre     string `json:"nombre"     validate:"required,between=2,100"`
	Email      string `json:"email"      validate:"required,email,max=100"`
	Contrasena string `json:"contrasena" validate:"required,between=6,255"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(crearUsuarioInput{
		Nombre:     "Ana García",
		Email:      "ana@example.com",
		Contrasena: "secret123",
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(crearUsuarioInput{})
	if !validate.HasErrors(errs) {
		t.Fatal("expected required errors")
	}
	for _, field := range []string{"nombre", "email", "contrasena"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected %s to be required", field)
		}
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	errs := validate.Struct(in{Email: "not-an-email"})
	if _, ok := errs["email"]; !ok {
		t.Error("expected email validation error")
	}
	errs = validate.Struct(in{Email: "valid@example.com"})
	if validate.HasErrors(errs) {
		t.Errorf("expected valid email to pass, got: %v", errs)
	}
}

func TestBetweenStringLength(t *testing.T) {
	type in struct {
		Nombre string `json:"nombre" validate:"required,between=2,100"`
	}
	errs := validate.Struct(in{Nombre: "x"})
	if _, ok := errs["nombre"]; !ok {
		t.Error("expected too-short name to fail")
	}
	errs = validate.Struct(in{Nombre: "ok"})
	if validate.HasErrors(errs) {
		t.Errorf("expected 2-char name to pass, got: %v", errs)
	}
}

func TestNullablePointerSkipsRules(t *testing.T) {
	type in struct {
		Cantidad *int `json:"cantidad" validate:"nullable,gte=1"`
	}
	errs := validate.Struct(in{})
	if validate.HasErrors(errs) {
		t.Errorf("expected nil pointer to be skipped, got: %v", errs)
	}
}

func TestPointerDereference(t *testing.T) {
	type in struct {
		Cantidad *int `json:"cantidad" validate:"nullable,gte=1"`
	}
	zero := 0
	errs := validate.Struct(in{Cantidad: &zero})
	if _, ok := errs["cantidad"]; !ok {
		t.Error("expected gte=1 to fail for *int pointing at 0")
	}

	one := 1
	errs = validate.Struct(in{Cantidad: &one})
	if validate.HasErrors(errs) {
		t.Errorf("expected *int pointing at 1 to pass, got: %v", errs)
	}
}

func TestAllOffendingFieldsReported(t *testing.T) {
	errs := validate.Struct(crearUsuarioInput{
		Nombre:     "x",
		Email:      "bad",
		Contrasena: "123",
	})
	if len(errs) != 3 {
		t.Errorf("expected one message per offending field, got: %v", errs)
	}
}

func TestInRuleKeepsParamCommas(t *testing.T) {
	type in struct {
		Driver string `json:"driver" validate:"required,in=sqlite,postgres,mysql,max=20"`
	}
	errs := validate.Struct(in{Driver: "postgres"})
	if validate.HasErrors(errs) {
		t.Errorf("expected listed value to pass, got: %v", errs)
	}
	errs = validate.Struct(in{Driver: "oracle"})
	if _, ok := errs["driver"]; !ok {
		t.Error("expected unlisted value to fail")
	}
}
