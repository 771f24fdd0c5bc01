package auth

import (
	"testing"

	"github.com/scribearc/scribearc/internal/config"
	"github.com/scribearc/scribearc/internal/constant"
)

// Generate tokens then verify them to ensure VerifyJwtToken round-trips the payload
func TestJWT(t *testing.T) {
	jwtService := NewJwt(config.AuthConfig{JWT_SECRET: "test-secret"}, nil)

	payload := JWTPayload{
		ID:        "id1234",
		Email:     "staff@example.com",
		FirstName: "Test",
		LastName:  "Staff",
		Role:      constant.UserRoleStaff,
	}

	refreshToken, accessToken, err := jwtService.GenerateRefreshAndAccessToken(payload)
	if err != nil {
		t.Fatalf("An error occurred during refresh token and access token generation. Error: %v", err)
	}

	refreshClaims, err := jwtService.VerifyJwtToken(*refreshToken)
	if err != nil {
		t.Fatalf("An error occurred during refresh token verification. Error: %v", err)
	}
	if refreshClaims.Type != constant.JWT_TYPE_REFRESH {
		t.Errorf("Refresh token type = %s, want %s", refreshClaims.Type, constant.JWT_TYPE_REFRESH)
	}

	accessClaims, err := jwtService.VerifyJwtToken(*accessToken)
	if err != nil {
		t.Fatalf("An error occurred during access token verification. Error: %v", err)
	}
	if accessClaims.Type != constant.JWT_TYPE_ACCESS {
		t.Errorf("Access token type = %s, want %s", accessClaims.Type, constant.JWT_TYPE_ACCESS)
	}
	if accessClaims.User != payload {
		t.Errorf("Access token payload = %+v, want %+v", accessClaims.User, payload)
	}

	if _, err := jwtService.VerifyJwtToken("not-a-token"); err == nil {
		t.Error("VerifyJwtToken accepted a malformed token")
	}

	other := NewJwt(config.AuthConfig{JWT_SECRET: "other-secret"}, nil)
	if _, err := other.VerifyJwtToken(*accessToken); err == nil {
		t.Error("VerifyJwtToken accepted a token signed with a different secret")
	}
}
