package repository

import "github.com/pkg/errors"

// ErrNotFound indica que a atualização não encontrou o registro
var ErrNotFound = errors.New("registro não encontrado")
