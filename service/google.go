package service

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// tokeninfo 端点直接校验 id_token 的签名并返回载荷，适合服务端低频登录场景
const googleTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

// GoogleUserInfo Google 账号信息（来自 id_token 载荷）
type GoogleUserInfo struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
	Audience      string `json:"aud"`
	Expiry        string `json:"exp"`
}

// VerifyGoogleIDToken 校验客户端上传的 Google id_token 并返回账号信息
// aud 必须与配置的 client_id 一致，否则视为其他应用签发的 token
func VerifyGoogleIDToken(idToken, clientID string) (*GoogleUserInfo, error) {
	if idToken == "" {
		return nil, fmt.Errorf("id_token 不能为空")
	}

	params := url.Values{}
	params.Set("id_token", idToken)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(googleTokenInfoURL + "?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("请求 Google 服务器失败: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取响应失败: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		var errResp struct {
			Error            string `json:"error"`
			ErrorDescription string `json:"error_description"`
		}
		_ = json.Unmarshal(data, &errResp)
		msg := errResp.ErrorDescription
		if msg == "" {
			msg = string(data)
		}
		return nil, fmt.Errorf("Google 返回错误: %s", msg)
	}

	var info GoogleUserInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("解析响应失败: %w", err)
	}
	if info.Sub == "" {
		return nil, fmt.Errorf("Google 返回的用户信息中无 sub")
	}
	if clientID != "" && info.Audience != clientID {
		return nil, fmt.Errorf("id_token 不属于本应用")
	}
	if exp, err := strconv.ParseInt(info.Expiry, 10, 64); err == nil {
		if time.Now().Unix() >= exp {
			return nil, fmt.Errorf("id_token 已过期")
		}
	}
	return &info, nil
}
