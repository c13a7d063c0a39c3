package handler

import (
	"strconv"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		panic("handler: gin binding engine is not go-playground/validator")
	}
	if err := v.RegisterValidation("maxbytes", maxBytes); err != nil {
		panic("handler: register maxbytes: " + err.Error())
	}
}

// maxBytes checks the byte length of a string against the tag parameter.
// Password fields use maxbytes=72: bcrypt refuses longer input, and
// validator's max counts runes.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}
