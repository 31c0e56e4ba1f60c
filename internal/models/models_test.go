package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_Channel(t *testing.T) {
	assert.Equal(t, "#product-support", CategoryProductSupport.Channel())
	assert.Equal(t, "#billing", CategoryBilling.Channel())
	assert.Equal(t, "#general-inquiry", CategoryGeneralInquiry.Channel())
}

func TestCategory_Valid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.Valid())
	}
	assert.False(t, Category("Spam").Valid())
	assert.False(t, Category("").Valid())
}
