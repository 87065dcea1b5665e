package api

import (
	"fmt"

	"github.com/fsdevblog/safevault/internal/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// validateWalletPlatform проверяет, что платформа вывода из списка поддерживаемых.
func validateWalletPlatform(fl validator.FieldLevel) bool {
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	switch domain.PlatformType(str) {
	case domain.PlatformBinance, domain.PlatformTrustWallet, domain.PlatformOther:
		return true
	default:
		return false
	}
}

func registerValidators() error {
	v, _ := binding.Validator.Engine().(*validator.Validate)
	if err := v.RegisterValidation("wallet_platform", validateWalletPlatform); err != nil {
		return fmt.Errorf("validator registration: %s", err.Error())
	}
	return nil
}
