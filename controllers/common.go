package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// flashCookieName carries one-shot user messages across the redirect
// that every form endpoint responds with.
const flashCookieName = "flash"

const dateLayout = "02.01.2006"

// setFlash stores a one-shot message for the next page view.
func setFlash(c *gin.Context, message string) {
	c.SetCookie(flashCookieName, message, 60, "/", "", false, true)
}

// takeFlash returns the pending flash message, if any, and clears it.
func takeFlash(c *gin.Context) string {
	message, err := c.Cookie(flashCookieName)
	if err != nil || message == "" {
		return ""
	}
	c.SetCookie(flashCookieName, "", -1, "/", "", false, true)
	return message
}

// parseIDParam parses the numeric :id path parameter.
func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// parseRequiredID coerces a required numeric form field.
func parseRequiredID(value string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(value), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// parseOptionalID coerces an optional numeric form field; blank means
// absent.
func parseOptionalID(value string) (*uint, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return nil, err
	}
	result := uint(id)
	return &result, nil
}

// parseOptionalPrice coerces an optional monetary form field. Blank and
// zero both mean absent and are stored as NULL.
func parseOptionalPrice(value string) (*float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	price, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, err
	}
	if price == 0 {
		return nil, nil
	}
	return &price, nil
}
