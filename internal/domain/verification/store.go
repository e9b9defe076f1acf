package verification

import (
	"errors"
	"fmt"

	"linkpage-app/internal/domain/notifications"
	"linkpage-app/internal/domain/pages"
	"linkpage-app/internal/domain/users"

	"gorm.io/gorm"
)

var (
	// ErrPageRequired: a brand request must name the page it is for.
	ErrPageRequired = errors.New("brand verification requires a page")
	// ErrPageNotFound: the named page does not exist or is not owned by
	// the submitting user.
	ErrPageNotFound = errors.New("page not found")
	// ErrBrandNeedsVerifiedPage: only users who already hold a verified
	// page may request brand status for another page.
	ErrBrandNeedsVerifiedPage = errors.New("brand verification requires an already verified page")
)

const cascadeReason = "Automatically revoked together with the personal verification"

/*
	Lifecycle persistence
	---------------------
	Every operation is one transaction: the status write, the verified-flag
	side effects on users/pages and the notification row commit together or
	not at all. The single-pending invariant is held by partial unique
	indexes on requests (one pending personal row per user, one pending
	brand row per user+page, created in database.InitDB): the pre-insert
	count answers the common case, the index decides races.

	IMPORTANT: pass db in, do NOT import linkpage-app/database here.
*/

// Submit files a new request. The subject (user for personal, page for
// brand) must not already have one pending.
func Submit(db *gorm.DB, req *Request) error {
	return db.Transaction(func(tx *gorm.DB) error {
		pending := tx.Model(&Request{}).
			Where("user_id = ? AND status = ?", req.UserID, StatusPending)
		if req.ReqType == TypeBrand {
			if req.PageID == nil || *req.PageID == "" {
				return ErrPageRequired
			}
			pending = pending.Where("page_id = ?", *req.PageID)
		}

		var count int64
		if err := pending.Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicatePending
		}

		if req.ReqType == TypeBrand {
			var verified int64
			if err := tx.Model(&pages.Page{}).
				Where("user_id = ? AND is_verified = true", req.UserID).
				Count(&verified).Error; err != nil {
				return err
			}
			if verified == 0 {
				return ErrBrandNeedsVerifiedPage
			}

			var target pages.Page
			if err := tx.First(&target, "id = ? AND user_id = ?", *req.PageID, req.UserID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrPageNotFound
				}
				return err
			}

			if err := tx.Model(&pages.Page{}).
				Where("id = ?", target.ID).
				Update("brand_status", pages.BrandStatusPending).Error; err != nil {
				return err
			}
		}

		req.Status = StatusPending
		if err := tx.Create(req).Error; err != nil {
			return asDuplicatePending(err)
		}

		if req.ReqType == TypePersonal {
			return tx.Model(&users.User{}).
				Where("id = ?", req.UserID).
				Update("verification_status", StatusPending).Error
		}
		return nil
	})
}

// Approve moves the request to approved and grants the verified flag to its
// subject: the target page for brand requests, the user's main page plus
// the user record for personal ones.
func Approve(db *gorm.DB, id string) (*Request, error) {
	var req Request
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := loadRequest(tx, id, &req); err != nil {
			return err
		}
		if err := MarkApproved(&req); err != nil {
			return err
		}
		if err := tx.Model(&Request{}).
			Where("id = ?", req.ID).
			Update("status", req.Status).Error; err != nil {
			return err
		}

		var message string
		if req.ReqType == TypeBrand && req.PageID != nil {
			if err := tx.Model(&pages.Page{}).
				Where("id = ?", *req.PageID).
				Updates(map[string]interface{}{
					"is_verified":  true,
					"is_brand":     true,
					"brand_status": pages.BrandStatusVerified,
				}).Error; err != nil {
				return err
			}
			message = "Your brand verification request has been approved."
		} else {
			main, err := mainPage(tx, req.UserID)
			if err != nil {
				return err
			}
			if main != nil {
				if err := tx.Model(&pages.Page{}).
					Where("id = ?", main.ID).
					Update("is_verified", true).Error; err != nil {
					return err
				}
			}
			if err := tx.Model(&users.User{}).
				Where("id = ?", req.UserID).
				Updates(map[string]interface{}{
					"is_verified":         true,
					"verification_status": StatusApproved,
				}).Error; err != nil {
				return err
			}
			message = "Your verification request has been approved. The badge now shows on your main page."
		}

		return notify(tx, req.UserID, message)
	})
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// Reject moves the request to rejected with the given reason.
func Reject(db *gorm.DB, id, reason string) (*Request, error) {
	var req Request
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := loadRequest(tx, id, &req); err != nil {
			return err
		}
		if err := MarkRejected(&req, reason); err != nil {
			return err
		}
		if err := tx.Model(&Request{}).
			Where("id = ?", req.ID).
			Updates(map[string]interface{}{
				"status":           req.Status,
				"rejection_reason": reason,
			}).Error; err != nil {
			return err
		}

		if req.ReqType == TypeBrand && req.PageID != nil {
			if err := tx.Model(&pages.Page{}).
				Where("id = ?", *req.PageID).
				Update("brand_status", pages.BrandStatusRejected).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Model(&users.User{}).
				Where("id = ?", req.UserID).
				Update("verification_status", StatusRejected).Error; err != nil {
				return err
			}
		}

		return notify(tx, req.UserID, fmt.Sprintf("Your verification request was rejected. Reason: %s", reason))
	})
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// Cancel revokes an approved verification. A personal revoke cascades: the
// user's pages all lose their badges and every approved brand request of
// the same user is revoked with it.
func Cancel(db *gorm.DB, id, reason string) (*Request, error) {
	var req Request
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := loadRequest(tx, id, &req); err != nil {
			return err
		}
		if err := MarkRevoked(&req, reason); err != nil {
			return err
		}

		updates := map[string]interface{}{"status": req.Status}
		if reason != "" {
			updates["rejection_reason"] = reason
		}
		if err := tx.Model(&Request{}).
			Where("id = ?", req.ID).
			Updates(updates).Error; err != nil {
			return err
		}

		message := "Your verification has been revoked."
		if reason != "" {
			message = fmt.Sprintf("Your verification has been revoked. Reason: %s", reason)
		}

		if req.ReqType == TypeBrand && req.PageID != nil {
			if err := tx.Model(&pages.Page{}).
				Where("id = ?", *req.PageID).
				Updates(map[string]interface{}{
					"is_verified":  false,
					"brand_status": pages.BrandStatusRejected,
				}).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Model(&users.User{}).
				Where("id = ?", req.UserID).
				Updates(map[string]interface{}{
					"is_verified":         false,
					"verification_status": StatusCancelled,
				}).Error; err != nil {
				return err
			}
			if err := tx.Model(&pages.Page{}).
				Where("user_id = ?", req.UserID).
				Updates(map[string]interface{}{
					"is_verified":  false,
					"is_brand":     false,
					"brand_status": pages.BrandStatusRejected,
				}).Error; err != nil {
				return err
			}
			if err := tx.Model(&Request{}).
				Where("user_id = ? AND req_type = ? AND status = ?", req.UserID, TypeBrand, StatusApproved).
				Updates(map[string]interface{}{
					"status":           StatusRevoked,
					"rejection_reason": cascadeReason,
				}).Error; err != nil {
				return err
			}
		}

		return notify(tx, req.UserID, message)
	})
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// Resume moves any non-pending request back to pending and clears the
// recorded reason.
func Resume(db *gorm.DB, id string) (*Request, error) {
	var req Request
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := loadRequest(tx, id, &req); err != nil {
			return err
		}
		if err := MarkResumed(&req); err != nil {
			return err
		}
		return tx.Model(&Request{}).
			Where("id = ?", req.ID).
			Updates(map[string]interface{}{
				"status":           StatusPending,
				"rejection_reason": nil,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// DeleteRequest removes the record entirely, regardless of state.
// Irreversible and distinct from any lifecycle transition.
func DeleteRequest(db *gorm.DB, id string) error {
	res := db.Delete(&Request{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// asDuplicatePending converts the unique violation raised by the
// one-pending-per-subject partial indexes into the domain error. Two
// concurrent submissions both pass the count check under READ COMMITTED;
// the second insert hits the index and lands here.
func asDuplicatePending(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicatePending
	}
	return err
}

func loadRequest(tx *gorm.DB, id string, dst *Request) error {
	if err := tx.First(dst, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// mainPage returns the user's main page, falling back to the oldest page
// and promoting it when none is marked main yet.
func mainPage(tx *gorm.DB, userID uint) (*pages.Page, error) {
	var p pages.Page
	err := tx.First(&p, "user_id = ? AND is_main = true", userID).Error
	if err == nil {
		return &p, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = tx.Where("user_id = ?", userID).Order("created_at ASC").First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := tx.Model(&pages.Page{}).Where("id = ?", p.ID).Update("is_main", true).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func notify(tx *gorm.DB, userID uint, message string) error {
	n := notifications.Notification{
		UserID:  userID,
		Type:    notifications.TypeVerification,
		Message: message,
	}
	return tx.Create(&n).Error
}
