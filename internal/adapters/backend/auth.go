package backend

import (
	"context"

	"ppalog/internal/core/domain"
	"ppalog/internal/core/ports"
)

type loginRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerCorpsMemberDTO struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	StateCode    string `json:"stateCode"`
	CallUpNumber string `json:"callUpNumber"`
	JoinCode     string `json:"joinCode"`
}

type registerSupervisorDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type joinPPADTO struct {
	JoinCode string `json:"joinCode"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*ports.AuthSession, error) {
	var resp authResponseDTO
	err := c.post(ctx, "login", "/auth/login", loginRequestDTO{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return &ports.AuthSession{Token: resp.Token, Identity: resp.User.toDomain()}, nil
}

func (c *Client) RegisterCorpsMember(ctx context.Context, req ports.RegisterCorpsMemberRequest) (*ports.AuthSession, error) {
	body := registerCorpsMemberDTO{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		StateCode:    req.StateCode,
		CallUpNumber: req.CallUpNumber,
		JoinCode:     req.JoinCode,
	}
	var resp authResponseDTO
	if err := c.post(ctx, "register", "/auth/register", body, &resp); err != nil {
		return nil, err
	}
	return &ports.AuthSession{Token: resp.Token, Identity: resp.User.toDomain()}, nil
}

func (c *Client) RegisterSupervisor(ctx context.Context, req ports.RegisterSupervisorRequest) (*ports.AuthSession, error) {
	body := registerSupervisorDTO{Name: req.Name, Email: req.Email, Password: req.Password}
	var resp authResponseDTO
	if err := c.post(ctx, "register_supervisor", "/auth/register/supervisor", body, &resp); err != nil {
		return nil, err
	}
	return &ports.AuthSession{Token: resp.Token, Identity: resp.User.toDomain()}, nil
}

func (c *Client) CurrentUser(ctx context.Context) (*domain.Identity, error) {
	var resp userDTO
	if err := c.get(ctx, "current_user", "/auth/me", &resp); err != nil {
		return nil, err
	}
	identity := resp.toDomain()
	return &identity, nil
}

func (c *Client) JoinPPA(ctx context.Context, joinCode string) error {
	return c.post(ctx, "join_ppa", "/auth/join-ppa", joinPPADTO{JoinCode: joinCode}, nil)
}
