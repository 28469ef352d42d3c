package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/bjaus/mist"
)

// DefaultFirmwareURL lists the IPSW images of the virtual Mac device, which
// covers every macOS release for Apple silicon.
const DefaultFirmwareURL = "https://api.ipsw.me/v4/device/VirtualMac2,1?type=ipsw"

// minimumMajorVersion is the first macOS release with Apple silicon firmware.
const minimumMajorVersion = 11

var releaseNames = map[int]string{
	11: "macOS Big Sur",
	12: "macOS Monterey",
	13: "macOS Ventura",
	14: "macOS Sonoma",
	15: "macOS Sequoia",
	26: "macOS Tahoe",
}

// FirmwareProvider reads firmwares from an IPSW index.
type FirmwareProvider struct {
	Client *resty.Client
	URL    string
	Logger *slog.Logger
}

// NewFirmwareProvider returns a provider reading [DefaultFirmwareURL].
func NewFirmwareProvider(client *resty.Client) *FirmwareProvider {
	return &FirmwareProvider{
		Client: client,
		URL:    DefaultFirmwareURL,
		Logger: slog.Default(),
	}
}

type ipswDevice struct {
	Firmwares []ipswFirmware `json:"firmwares"`
}

type ipswFirmware struct {
	Version     string    `json:"version"`
	BuildID     string    `json:"buildid"`
	URL         string    `json:"url"`
	SHA1Sum     string    `json:"sha1sum"`
	ReleaseDate time.Time `json:"releasedate"`
	Signed      bool      `json:"signed"`
}

// Firmwares implements [mist.FirmwareProvider]. Firmwares older than macOS 11
// are skipped; the index order is kept.
func (p *FirmwareProvider) Firmwares(ctx context.Context) ([]mist.Firmware, error) {
	response, err := p.Client.R().SetContext(ctx).Get(p.URL)
	if err != nil {
		return nil, err
	}
	if err := checkResponse(p.URL, response); err != nil {
		return nil, err
	}

	var device ipswDevice
	if err := json.Unmarshal(response.Body(), &device); err != nil {
		return nil, fmt.Errorf("decode firmware index: %w", err)
	}

	firmwares := make([]mist.Firmware, 0, len(device.Firmwares))
	for _, fw := range device.Firmwares {
		major, ok := majorVersion(fw.Version)
		if !ok || major < minimumMajorVersion {
			p.logger().Debug("Skipping firmware", "version", fw.Version, "build", fw.BuildID)
			continue
		}
		firmwares = append(firmwares, mist.Firmware{
			Signed:   fw.Signed,
			Name:     releaseName(major),
			Version:  fw.Version,
			Build:    fw.BuildID,
			Date:     fw.ReleaseDate,
			URL:      fw.URL,
			Checksum: fw.SHA1Sum,
		})
	}
	return firmwares, nil
}

func (p *FirmwareProvider) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}

func majorVersion(version string) (int, bool) {
	head, _, _ := strings.Cut(version, ".")
	major, err := strconv.Atoi(head)
	if err != nil {
		return 0, false
	}
	return major, true
}

func releaseName(major int) string {
	if name, ok := releaseNames[major]; ok {
		return name
	}
	return "macOS " + strconv.Itoa(major)
}
