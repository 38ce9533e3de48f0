package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"growguard/internal/domain/entity"
	domainerrors "growguard/internal/domain/errors"
	"growguard/internal/domain/service"
	"growguard/internal/errors"

	"github.com/gabriel-vasile/mimetype"
)

type mobileRequest struct {
	MobileNumber string `json:"mobileNumber"`
}

type loginRequest struct {
	MobileNumber string `json:"mobileNumber"`
	OTPCode      string `json:"otpCode"`
}

type resendRequest struct {
	MobileNumber string             `json:"mobileNumber"`
	Purpose      service.OTPPurpose `json:"purpose"`
}

type saveReportRequest struct {
	ImagePath  string  `json:"imagePath"`
	IsHealthy  bool    `json:"isHealthy"`
	DiseaseKey string  `json:"diseaseKey"`
	Confidence float64 `json:"confidence"`
}

type diagnosisData struct {
	ID              string   `json:"id"`
	Image           string   `json:"image"`
	ImagePath       string   `json:"imagePath"`
	IsHealthy       bool     `json:"isHealthy"`
	DiseaseName     string   `json:"diseaseName"`
	Confidence      float64  `json:"confidence"`
	DiagnosisPoints []string `json:"diagnosisPoints"`
	TipsPoints      []string `json:"tipsPoints"`
	Date            string   `json:"date"`
}

func (d *diagnosisData) toEntity() *entity.Report {
	return &entity.Report{
		ID:              d.ID,
		Image:           d.Image,
		ImagePath:       d.ImagePath,
		IsHealthy:       d.IsHealthy,
		DiseaseName:     d.DiseaseName,
		Confidence:      d.Confidence,
		DiagnosisPoints: d.DiagnosisPoints,
		TipsPoints:      d.TipsPoints,
		Date:            d.Date,
	}
}

// reportListItem is one row of GET /reports; the disease name arrives as title.
type reportListItem struct {
	ID         string  `json:"id"`
	Image      string  `json:"image"`
	Title      string  `json:"title"`
	Date       string  `json:"date"`
	IsHealthy  bool    `json:"isHealthy"`
	Confidence float64 `json:"confidence"`
}

func (c *client) SendRegistrationOTP(ctx context.Context, mobile string) (string, error) {
	return c.sendMobile(ctx, "/auth/send-registration-otp", mobile)
}

func (c *client) SendLoginOTP(ctx context.Context, mobile string) (string, error) {
	return c.sendMobile(ctx, "/auth/send-login-otp", mobile)
}

func (c *client) sendMobile(ctx context.Context, path, mobile string) (string, error) {
	req, err := jsonRequest(http.MethodPost, path, path, &mobileRequest{MobileNumber: mobile})
	if err != nil {
		return "", err
	}

	resp, err := c.do(ctx, req)
	if err != nil {
		return "", err
	}

	return resp.Message, nil
}

func (c *client) ResendOTP(ctx context.Context, mobile string, purpose service.OTPPurpose) (string, error) {
	req, err := jsonRequest(http.MethodPost, "/auth/resend-otp", "/auth/resend-otp",
		&resendRequest{MobileNumber: mobile, Purpose: purpose})
	if err != nil {
		return "", err
	}

	resp, err := c.do(ctx, req)
	if err != nil {
		return "", err
	}

	return resp.Message, nil
}

func (c *client) Register(ctx context.Context, input *service.RegisterInput) (*service.AuthResult, error) {
	req, err := jsonRequest(http.MethodPost, "/auth/register", "/auth/register", input)
	if err != nil {
		return nil, err
	}

	return c.authenticate(ctx, req)
}

func (c *client) Login(ctx context.Context, mobile, otpCode string) (*service.AuthResult, error) {
	req, err := jsonRequest(http.MethodPost, "/auth/login", "/auth/login",
		&loginRequest{MobileNumber: mobile, OTPCode: otpCode})
	if err != nil {
		return nil, err
	}

	return c.authenticate(ctx, req)
}

// authenticate treats a success without a session payload as a rejected request.
func (c *client) authenticate(ctx context.Context, req *request) (*service.AuthResult, error) {
	resp, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}

	op := req.method + " " + req.endpoint
	if resp.Token == "" {
		return nil, errors.WithStack(domainerrors.NewHTTPError(op, http.StatusOK, "Server returned no session"))
	}

	user, err := decodeUser(op, resp.User)
	if err != nil {
		return nil, err
	}

	return &service.AuthResult{Token: resp.Token, User: user, Message: resp.Message}, nil
}

func decodeUser(op string, raw json.RawMessage) (*entity.User, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, errors.WithStack(domainerrors.NewHTTPError(op, http.StatusOK, "Server returned no user"))
	}

	var user entity.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, errors.WithStack(domainerrors.NewHTTPError(op, http.StatusOK, "Unexpected user payload"))
	}

	return &user, nil
}

func (c *client) GetProfile(ctx context.Context) (*entity.User, error) {
	req, _ := jsonRequest(http.MethodGet, "/user/profile", "/user/profile", nil)

	resp, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}

	return decodeUser("GET /user/profile", resp.User)
}

func (c *client) UpdateProfile(ctx context.Context, update *service.ProfileUpdate) (*entity.User, error) {
	req, err := jsonRequest(http.MethodPut, "/user/profile", "/user/profile", update)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}

	return decodeUser("PUT /user/profile", resp.User)
}

func (c *client) UploadScan(ctx context.Context, image *entity.Image) (*entity.Report, error) {
	if image == nil || len(image.Data) == 0 {
		return nil, errors.WithStack(domainerrors.NewValidationError("image", "No image file provided"))
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	contentType := image.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, image.Filename))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if _, err := part.Write(image.Data); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := writer.Close(); err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := c.do(ctx, &request{
		method:      http.MethodPost,
		endpoint:    "/scan/upload",
		path:        "/scan/upload",
		body:        &body,
		contentType: writer.FormDataContentType(),
	})
	if err != nil {
		return nil, err
	}
	if resp.DiagnosisData == nil {
		return nil, errors.WithStack(domainerrors.NewHTTPError("POST /scan/upload", http.StatusOK, "Server returned no diagnosis"))
	}

	report := resp.DiagnosisData.toEntity()
	// An upload result is transient until saved.
	report.ID = ""

	return report, nil
}

func (c *client) ListReports(ctx context.Context) ([]*entity.Report, error) {
	req, _ := jsonRequest(http.MethodGet, "/reports", "/reports", nil)

	resp, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}

	reports := make([]*entity.Report, 0, len(resp.Reports))
	for _, item := range resp.Reports {
		reports = append(reports, &entity.Report{
			ID:          item.ID,
			Image:       item.Image,
			IsHealthy:   item.IsHealthy,
			DiseaseName: item.Title,
			Confidence:  item.Confidence,
			Date:        item.Date,
		})
	}

	return reports, nil
}

func (c *client) SaveReport(ctx context.Context, report *entity.Report) (*entity.Report, error) {
	if report == nil || strings.TrimSpace(report.ImagePath) == "" {
		return nil, errors.WithStack(domainerrors.NewValidationError("imagePath", "Missing image path"))
	}

	req, err := jsonRequest(http.MethodPost, "/reports/save", "/reports/save", &saveReportRequest{
		ImagePath:  report.ImagePath,
		IsHealthy:  report.IsHealthy,
		DiseaseKey: report.DiseaseKey(),
		Confidence: report.Confidence,
	})
	if err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp.DiagnosisData == nil || resp.DiagnosisData.ID == "" {
		return nil, errors.WithStack(domainerrors.NewHTTPError("POST /reports/save", http.StatusOK, "Server returned no report id"))
	}

	saved := resp.DiagnosisData.toEntity()
	if saved.ImagePath == "" {
		saved.ImagePath = report.ImagePath
	}

	return saved, nil
}

func (c *client) GetReport(ctx context.Context, id string) (*entity.Report, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.WithStack(domainerrors.NewValidationError("id", "Report id is required"))
	}

	req, _ := jsonRequest(http.MethodGet, "/reports/:id", "/reports/"+url.PathEscape(id), nil)

	resp, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp.DiagnosisData == nil {
		return nil, errors.WithStack(domainerrors.NewHTTPError("GET /reports/:id", http.StatusNotFound, "Report not found"))
	}

	report := resp.DiagnosisData.toEntity()
	if report.ID == "" {
		report.ID = id
	}

	return report, nil
}

func (c *client) DeleteReport(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.WithStack(domainerrors.NewValidationError("id", "Report id is required"))
	}

	req, _ := jsonRequest(http.MethodDelete, "/reports/:id", "/reports/"+url.PathEscape(id), nil)
	_, err := c.do(ctx, req)

	return err
}

func (c *client) DeleteAllReports(ctx context.Context) error {
	req, _ := jsonRequest(http.MethodDelete, "/reports", "/reports", nil)
	_, err := c.do(ctx, req)

	return err
}

func (c *client) SubmitRating(ctx context.Context, rating *entity.Rating) error {
	req, err := jsonRequest(http.MethodPost, "/ratings", "/ratings", rating)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, req)

	return err
}

func (c *client) Health(ctx context.Context) (*service.HealthStatus, error) {
	req, _ := jsonRequest(http.MethodGet, "/health", "/health", nil)

	resp, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}

	return &service.HealthStatus{
		Success:  resp.Success == nil || *resp.Success,
		Message:  resp.Message,
		Database: resp.Database,
	}, nil
}

// ImageURL accepts full paths or bare filenames.
func (c *client) ImageURL(path string) string {
	filename := entity.ImageFilename(path)
	if filename == "" {
		return ""
	}

	return c.uploadsURL + "/" + url.PathEscape(filename)
}

func (c *client) FetchImage(ctx context.Context, filename string) ([]byte, string, error) {
	filename = entity.ImageFilename(filename)
	if filename == "" || filename == "." || filename == ".." {
		return nil, "", errors.WithStack(domainerrors.NewValidationError("filename", "Image filename is required"))
	}

	const op = "GET /uploads/:filename"

	resp, token, err := c.send(ctx, c.ImageURL(filename), &request{method: http.MethodGet, endpoint: "/uploads/:filename"})
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.expire(ctx, op, token)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", errors.WithStack(domainerrors.NewHTTPError(op, resp.StatusCode, ""))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", errors.WithStack(domainerrors.NewNetworkError(op, err))
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = mimetype.Detect(data).String()
	}

	return data, contentType, nil
}
