package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrMalformedToken = errors.New("malformed session token")
	ErrBadSignature   = errors.New("invalid session signature")
	ErrTokenExpired   = errors.New("session expired")
)

// CreateSessionToken はユーザーIDと有効期限から署名付きセッショントークンを生成する
func CreateSessionToken(userID string, secret []byte, ttl time.Duration) string {
	payload := fmt.Sprintf("%s|%d", userID, time.Now().Add(ttl).Unix())
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	sig := hex.EncodeToString(mac.Sum(nil))
	return base64.URLEncoding.EncodeToString([]byte(payload)) + "." + sig
}

// VerifySessionToken はトークンを検証しユーザーIDを返す。
// 署名が一致しても有効期限切れなら ErrTokenExpired を返す。
func VerifySessionToken(token string, secret []byte) (string, error) {
	parts := strings.SplitN(token, ".", 2)
	if len(parts) != 2 {
		return "", ErrMalformedToken
	}
	payload, err := base64.URLEncoding.DecodeString(parts[0])
	if err != nil {
		return "", ErrMalformedToken
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(parts[1])) {
		return "", ErrBadSignature
	}

	fields := strings.SplitN(string(payload), "|", 2)
	if len(fields) != 2 {
		return "", ErrMalformedToken
	}
	exp, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return "", ErrMalformedToken
	}
	if time.Now().Unix() > exp {
		return "", ErrTokenExpired
	}
	return fields[0], nil
}

const sessionCookieName = "codeward_session"
const minSecretLen = 32

// DefaultSessionTTL はセッションの標準有効期間
const DefaultSessionTTL = 24 * time.Hour

// SessionCookieName はセッションクッキー名
func SessionCookieName() string {
	return sessionCookieName
}

// SessionSecretBytes は文字列からセッション署名用のバイト列を生成する（最低32バイト）
func SessionSecretBytes(s string) []byte {
	b := []byte(s)
	if len(b) < minSecretLen {
		out := make([]byte, minSecretLen)
		copy(out, b)
		return out
	}
	return b
}
