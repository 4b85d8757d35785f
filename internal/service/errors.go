// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/storefront-api/internal/apperr"
	"github.com/MKhiriev/storefront-api/internal/store"
)

// mapStoreError translates repository sentinels into tagged failures the
// transport layer can render. Anything unrecognised passes through and is
// treated as internal by the normalizer.
func mapStoreError(err error, resource string) error {
	if err == nil {
		return nil
	}

	var dup *store.DuplicateError
	if errors.As(err, &dup) {
		message := resource + " already exists"
		if dup.Field != "" {
			message = fmt.Sprintf("%s with this %s already exists", resource, dup.Field)
		}
		return apperr.Wrap(apperr.Conflict, message, err)
	}

	if errors.Is(err, store.ErrNotFound) {
		return apperr.Wrap(apperr.NotFound,
			fmt.Sprintf("The %s with the given ID was not found.", resource), err)
	}

	return err
}
