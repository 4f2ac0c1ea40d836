package handlers

import (
	"github.com/ravenstudio/raven-community-api/internal/infra/repository"
)

func isDuplicateErr(err error) bool {
	return repository.IsDuplicate(err)
}
