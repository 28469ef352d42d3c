package catalog

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"log/slog"
	"maps"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/Masterminds/semver"
	"github.com/go-resty/resty/v2"
	"howett.net/plist"

	"github.com/bjaus/mist"
)

// DefaultCatalogURL is the merged software update catalog covering every
// macOS release with a full installer.
const DefaultCatalogURL = "https://swscan.apple.com/content/catalogs/others/index-26-15-14-13-12-10.16-10.15-10.14-10.13-10.12-10.11-10.10-10.9-mountainlion-lion-snowleopard-leopard.merged-1.sucatalog"

// Distribution languages, most preferred first.
var distributionLanguages = []string{"English", "en"}

var localizedTitle = regexp.MustCompile(`"SU_TITLE"\s*=\s*"([^"]+)"`)

// ProductProvider reads installer products from a software update catalog.
type ProductProvider struct {
	Client *resty.Client
	Logger *slog.Logger
}

// NewProductProvider returns a provider using client for every request.
func NewProductProvider(client *resty.Client) *ProductProvider {
	return &ProductProvider{
		Client: client,
		Logger: slog.Default(),
	}
}

type softwareUpdateCatalog struct {
	Products map[string]catalogProduct `plist:"Products"`
}

type catalogProduct struct {
	PostDate         time.Time         `plist:"PostDate"`
	Distributions    map[string]string `plist:"Distributions"`
	ExtendedMetaInfo struct {
		InstallAssistantPackageIdentifiers map[string]any `plist:"InstallAssistantPackageIdentifiers"`
	} `plist:"ExtendedMetaInfo"`
}

func (c catalogProduct) isInstaller() bool {
	return len(c.ExtendedMetaInfo.InstallAssistantPackageIdentifiers) > 0
}

func (c catalogProduct) distributionURL() string {
	for _, lang := range distributionLanguages {
		if url, ok := c.Distributions[lang]; ok {
			return url
		}
	}
	return ""
}

// distribution is the subset of an installer distribution script needed to
// name a product.
type distribution struct {
	Title   string `xml:"title"`
	AuxInfo struct {
		Keys   []string `xml:"dict>key"`
		Values []string `xml:"dict>string"`
	} `xml:"auxinfo"`
}

func (d distribution) auxValue(key string) string {
	for i, k := range d.AuxInfo.Keys {
		if k == key && i < len(d.AuxInfo.Values) {
			return d.AuxInfo.Values[i]
		}
	}
	return ""
}

// Products implements [mist.ProductProvider]. Only full installers are
// returned, newest version first.
func (p *ProductProvider) Products(ctx context.Context, catalogURL string) ([]mist.Product, error) {
	if catalogURL == "" {
		catalogURL = DefaultCatalogURL
	}
	logger := p.logger().With("catalog", catalogURL)

	response, err := p.Client.R().SetContext(ctx).Get(catalogURL)
	if err != nil {
		return nil, err
	}
	if err := checkResponse(catalogURL, response); err != nil {
		return nil, err
	}

	var catalog softwareUpdateCatalog
	if _, err := plist.Unmarshal(response.Body(), &catalog); err != nil {
		return nil, fmt.Errorf("decode software update catalog: %w", err)
	}

	var products []mist.Product
	for _, identifier := range slices.Sorted(maps.Keys(catalog.Products)) {
		entry := catalog.Products[identifier]
		if !entry.isInstaller() {
			continue
		}
		url := entry.distributionURL()
		if url == "" {
			logger.Debug("Skipping product without distribution", "identifier", identifier)
			continue
		}

		dist, err := p.fetchDistribution(ctx, url)
		if err != nil {
			return nil, err
		}
		product, ok := newProduct(identifier, entry, url, dist)
		if !ok {
			logger.Debug("Skipping product without version or build", "identifier", identifier)
			continue
		}
		products = append(products, product)
	}

	sortProducts(products)
	return products, nil
}

func (p *ProductProvider) fetchDistribution(ctx context.Context, url string) ([]byte, error) {
	response, err := p.Client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, err
	}
	if err := checkResponse(url, response); err != nil {
		return nil, err
	}
	return response.Body(), nil
}

func (p *ProductProvider) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}

func newProduct(identifier string, entry catalogProduct, url string, data []byte) (mist.Product, bool) {
	var dist distribution
	if err := xml.NewDecoder(bytes.NewReader(data)).Decode(&dist); err != nil {
		return mist.Product{}, false
	}
	version := dist.auxValue("VERSION")
	build := dist.auxValue("BUILD")
	if version == "" || build == "" {
		return mist.Product{}, false
	}
	return mist.Product{
		Identifier:   identifier,
		Name:         productName(dist.Title, data, version),
		Version:      version,
		Build:        build,
		Date:         entry.PostDate,
		Distribution: url,
	}, true
}

// productName resolves the distribution title, which is often a localization
// key.
func productName(title string, data []byte, version string) string {
	title = strings.TrimSpace(title)
	if title == "SU_TITLE" || title == "" {
		if m := localizedTitle.FindSubmatch(data); m != nil {
			title = string(m[1])
		} else {
			title = ""
		}
	}
	title = strings.TrimPrefix(title, "Install ")
	if title == "" {
		return "macOS " + version
	}
	return title
}

// sortProducts orders products by version, newest first. Versions that do
// not parse sort last; ties keep the newest post date first.
func sortProducts(products []mist.Product) {
	versions := make(map[string]*semver.Version, len(products))
	for _, p := range products {
		if v, err := semver.NewVersion(p.Version); err == nil {
			versions[p.Version] = v
		}
	}
	slices.SortStableFunc(products, func(a, b mist.Product) int {
		va, vb := versions[a.Version], versions[b.Version]
		switch {
		case va != nil && vb != nil:
			if c := vb.Compare(va); c != 0 {
				return c
			}
		case va != nil:
			return -1
		case vb != nil:
			return 1
		}
		return b.Date.Compare(a.Date)
	})
}
