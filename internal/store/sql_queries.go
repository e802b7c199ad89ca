// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-auth-gate/models"
)

// userColumns is the column order scanned by [scanUser].
var userColumns = []string{"user_id", "password_hash", "display_name", "email", "created_at"}

// buildCreateUserQuery builds an INSERT that does nothing when user_id is
// taken. A conflict then yields no RETURNING row, which the repository
// reports as ErrUserAlreadyExists.
func buildCreateUserQuery(placeholder sq.PlaceholderFormat, user models.User) (string, []any, error) {
	return sq.Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.UserID, user.PasswordHash, user.Profile.DisplayName, user.Profile.Email, user.CreatedAt).
		Suffix("ON CONFLICT (user_id) DO NOTHING RETURNING user_id").
		PlaceholderFormat(placeholder).
		ToSql()
}

func buildFindUserByIDQuery(placeholder sq.PlaceholderFormat, userID string) (string, []any, error) {
	return sq.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		PlaceholderFormat(placeholder).
		ToSql()
}
