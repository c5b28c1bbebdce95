package service

import (
	"testing"

	"expensetracker/config"

	"github.com/stretchr/testify/assert"
)

func newTestEmailService() *EmailService {
	return NewEmailService(&config.EmailConfig{})
}

func TestGenerateResetEmailBody(t *testing.T) {
	s := newTestEmailService()
	body := s.generateResetEmailBody("张三", "https://example.com/reset?token=abc")
	assert.Contains(t, body, "张三")
	assert.Contains(t, body, "https://example.com/reset?token=abc")
	assert.Contains(t, body, "重置密码")
	assert.Contains(t, body, "30 分钟")
}

func TestGenerateAppResetEmailBody(t *testing.T) {
	s := newTestEmailService()
	body := s.generateAppResetEmailBody("李四", "888999")
	assert.Contains(t, body, "李四")
	assert.Contains(t, body, "888999")
	assert.Contains(t, body, "密码重置")
}
