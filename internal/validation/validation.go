package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// usa o nome do campo do JSON nas mensagens de erro
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return v
}

// Struct valida o corpo da requisição e devolve um erro 400 com mensagem
// amigável para o primeiro campo inválido. A validação acontece antes de
// qualquer acesso ao banco.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Tag() == "required" {
			return fiber.NewError(fiber.StatusBadRequest, "Campo "+fe.Field()+" é obrigatório")
		}
		return fiber.NewError(fiber.StatusBadRequest, fe.Field()+" inválido")
	}

	return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos")
}
