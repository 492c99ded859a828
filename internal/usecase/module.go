package usecase

import "go.uber.org/fx"

// Module provides AccountUseCase.
var Module = fx.Provide(NewAccountUseCase)
