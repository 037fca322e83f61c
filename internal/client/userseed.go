package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/qosme/appGameZone-010V-Grupo3/internal/usecase"
)

// randomuser.me からテストユーザーを取得するクライアント。
type UserSeedClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewUserSeedClient(baseURL string) *UserSeedClient {
	return &UserSeedClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: baseURL,
	}
}

type apiName struct {
	First string `json:"first"`
	Last  string `json:"last"`
}

type apiLogin struct {
	Password string `json:"password"`
}

type apiPicture struct {
	Large string `json:"large"`
}

type apiUser struct {
	Email   string     `json:"email"`
	Name    apiName    `json:"name"`
	Login   apiLogin   `json:"login"`
	Phone   string     `json:"phone"`
	Picture apiPicture `json:"picture"`
}

type apiResponse struct {
	Results []apiUser `json:"results"`
}

func (c *UserSeedClient) Fetch(ctx context.Context, count int) ([]usecase.SeedUser, error) {
	q := url.Values{}
	q.Set("results", fmt.Sprintf("%d", count))
	q.Set("inc", "email,login,name,phone,picture")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("seed api status %d", resp.StatusCode)
	}

	var res apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("decode seed response: %w", err)
	}

	seeds := make([]usecase.SeedUser, 0, len(res.Results))
	for _, u := range res.Results {
		seeds = append(seeds, usecase.SeedUser{
			Email:      u.Email,
			Name:       u.Name.First + " " + u.Name.Last,
			Phone:      u.Phone,
			Password:   u.Login.Password,
			PictureURI: u.Picture.Large,
		})
	}
	return seeds, nil
}
