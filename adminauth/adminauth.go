package adminauth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"expensetracker/config"

	"github.com/gin-gonic/gin"
)

// defaultSecret JWT secret 未配置时的兜底签名密钥（仅开发环境）
const defaultSecret = "expense-tracker-cookie-secret"

// signingSecret 返回 Cookie 签名密钥，复用 JWT secret
func signingSecret() []byte {
	if config.GlobalConfig != nil && config.GlobalConfig.JWT.Secret != "" {
		return []byte(config.GlobalConfig.JWT.Secret)
	}
	return []byte(defaultSecret)
}

// SignCookieValue 对 Cookie 值进行 HMAC-SHA256 签名，格式: value.hex(hmac)
func SignCookieValue(value string) string {
	mac := hmac.New(sha256.New, signingSecret())
	mac.Write([]byte(value))
	return value + "." + hex.EncodeToString(mac.Sum(nil))
}

// VerifyCookieValue 校验签名并返回原始值，防止客户端篡改 Cookie 越权
func VerifyCookieValue(signed string) (string, error) {
	if signed == "" {
		return "", fmt.Errorf("cookie value is empty")
	}
	idx := strings.LastIndex(signed, ".")
	if idx <= 0 {
		return "", fmt.Errorf("invalid cookie format")
	}
	value, sigHex := signed[:idx], signed[idx+1:]

	mac := hmac.New(sha256.New, signingSecret())
	mac.Write([]byte(value))
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(sigHex)) {
		return "", fmt.Errorf("cookie signature mismatch")
	}
	return value, nil
}

// GetVerifiedAdminUserID 验证 admin_user_id cookie 签名并返回用户 ID
func GetVerifiedAdminUserID(c *gin.Context) (uint, error) {
	signed, err := c.Cookie("admin_user_id")
	if err != nil {
		return 0, fmt.Errorf("未登录")
	}
	value, err := VerifyCookieValue(signed)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid cookie value")
	}
	return uint(id), nil
}
