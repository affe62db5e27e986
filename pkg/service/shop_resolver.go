package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Kewen526/jx-data-api/pkg/model"
	"github.com/Kewen526/jx-data-api/pkg/repo"
	"gitlab.com/goxp/cloud0/logger"
	"gorm.io/gorm"
)

// shopMappings is the resolved view of the requested accounts: the concrete
// shop set they own plus per-shop enrichment. Absence of a shop in the maps
// means "no enrichment available", not an error.
type shopMappings struct {
	ShopIDs []string
	Info    map[string]model.ShopInfo
	Region  map[string]model.RegionInfo
}

// resolveShopMappings decodes the account-owned blobs. A malformed blob
// yields zero shops for that account, it never fails the whole resolution.
func resolveShopMappings(ctx context.Context, rp repo.PGInterface, accounts []string, tx *gorm.DB) (shopMappings, error) {
	log := logger.WithCtx(ctx, "ReportService.resolveShopMappings")

	rs := shopMappings{
		Info:   make(map[string]model.ShopInfo),
		Region: make(map[string]model.RegionInfo),
	}

	rows, err := rp.GetAccountBlobs(ctx, accounts, tx)
	if err != nil {
		return rs, err
	}

	seen := make(map[string]bool)
	for _, row := range rows {
		for _, shopID := range decodeStoresBlob(row.StoresJSON) {
			if !seen[shopID] {
				seen[shopID] = true
				rs.ShopIDs = append(rs.ShopIDs, shopID)
			}
			rs.Info[shopID] = model.ShopInfo{
				Operator: row.OperatorName,
				Sales:    row.SalesName,
				City:     row.CityName,
			}
		}
		if len(row.CompareRegionsJSON) > 0 {
			regions, err := decodeRegionsBlob(row.CompareRegionsJSON)
			if err != nil {
				log.WithError(err).WithField("account", row.Account).Info("skip malformed compare regions blob")
				continue
			}
			for shopID, region := range regions {
				rs.Region[shopID] = region
			}
		}
	}

	return rs, nil
}

// decodeStoresBlob reads [{"shop_id": ...}, ...]; anything malformed at any
// level contributes nothing
func decodeStoresBlob(blob []byte) []string {
	if len(blob) == 0 {
		return nil
	}
	var stores []map[string]interface{}
	if err := json.Unmarshal(blob, &stores); err != nil {
		return nil
	}
	var shopIDs []string
	for _, store := range stores {
		if shopID := stringValue(store["shop_id"]); shopID != "" {
			shopIDs = append(shopIDs, shopID)
		}
	}
	return shopIDs
}

// decodeRegionsBlob reads {"<shop_id>": {"regions": {"city": {"regionName": ...}, ...}}};
// missing nested keys default to empty strings
func decodeRegionsBlob(blob []byte) (map[string]model.RegionInfo, error) {
	var regions map[string]map[string]interface{}
	if err := json.Unmarshal(blob, &regions); err != nil {
		return nil, err
	}
	rs := make(map[string]model.RegionInfo, len(regions))
	for shopID, shopData := range regions {
		regionsData, _ := shopData["regions"].(map[string]interface{})
		rs[shopID] = model.RegionInfo{
			City:     regionName(regionsData, "city"),
			District: regionName(regionsData, "district"),
			Business: regionName(regionsData, "business"),
		}
	}
	return rs, nil
}

func regionName(regions map[string]interface{}, key string) string {
	info, _ := regions[key].(map[string]interface{})
	name, _ := info["regionName"].(string)
	return name
}

// stringValue canonicalizes a shop identifier that external blobs carry as
// either a JSON string or a number
func stringValue(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatInt(int64(t), 10)
	case json.Number:
		return t.String()
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}
