package backend

import (
	"context"
	"net/url"

	"ppalog/internal/core/domain"
)

type createPPADTO struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description,omitempty"`
}

type validateJoinCodeDTO struct {
	IsValid bool `json:"isValid"`
}

func (c *Client) CreatePPA(ctx context.Context, req domain.CreatePPARequest) (*domain.PPA, error) {
	body := createPPADTO{Name: req.Name, Address: req.Address, Description: req.Description}
	var resp ppaDTO
	if err := c.post(ctx, "create_ppa", "/ppa", body, &resp); err != nil {
		return nil, err
	}
	ppa := resp.toDomain()
	return &ppa, nil
}

func (c *Client) MyPPAs(ctx context.Context) ([]domain.PPA, error) {
	var resp []ppaDTO
	if err := c.get(ctx, "my_ppas", "/ppa/mine/all", &resp); err != nil {
		return nil, err
	}
	ppas := make([]domain.PPA, 0, len(resp))
	for i := range resp {
		ppas = append(ppas, resp[i].toDomain())
	}
	return ppas, nil
}

func (c *Client) ValidateJoinCode(ctx context.Context, code string) (bool, error) {
	var resp validateJoinCodeDTO
	if err := c.get(ctx, "validate_join_code", "/ppa/validate/"+url.PathEscape(code), &resp); err != nil {
		return false, err
	}
	return resp.IsValid, nil
}
