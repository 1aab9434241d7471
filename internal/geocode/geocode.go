// Package geocode - клиент геокодера Nominatim (OpenStreetMap).
// Сервис сугубо вспомогательный: при его отказе клиент показывает
// сырые координаты вместо названия.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Result - найденное место.
type Result struct {
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	DisplayName string  `json:"displayName"`
}

// Client выполняет прямое и обратное геокодирование.
type Client struct {
	baseURL string
	http    *http.Client
}

// Nominatim отдает координаты строками.
type place struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// New создает клиента геокодера. Пустой baseURL означает публичный
// экземпляр Nominatim.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = "https://nominatim.openstreetmap.org"
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Search ищет места по произвольному тексту.
func (c *Client) Search(ctx context.Context, query string) ([]Result, error) {
	endpoint := fmt.Sprintf("%s/search?format=json&limit=5&q=%s", c.baseURL, url.QueryEscape(query))
	var places []place
	if err := c.get(ctx, endpoint, &places); err != nil {
		return nil, err
	}
	results := make([]Result, 0, len(places))
	for _, p := range places {
		lat, errLat := strconv.ParseFloat(p.Lat, 64)
		lon, errLon := strconv.ParseFloat(p.Lon, 64)
		if errLat != nil || errLon != nil {
			continue
		}
		results = append(results, Result{Lat: lat, Lon: lon, DisplayName: p.DisplayName})
	}
	return results, nil
}

// Reverse возвращает название места по координатам.
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (string, error) {
	endpoint := fmt.Sprintf("%s/reverse?format=json&lat=%g&lon=%g", c.baseURL, lat, lon)
	var p place
	if err := c.get(ctx, endpoint, &p); err != nil {
		return "", err
	}
	return p.DisplayName, nil
}

// get выполняет GET-запрос и разбирает JSON-ответ.
func (c *Client) get(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	// Nominatim требует осмысленный User-Agent
	req.Header.Set("User-Agent", "voyage-vault/1.0")
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("запрос к геокодеру не выполнен: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("геокодер вернул статус %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("не удалось разобрать ответ геокодера: %w", err)
	}
	return nil
}
