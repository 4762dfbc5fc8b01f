package telegram

import (
	"sort"

	"commodity-advisor/internal/dto"

	"gopkg.in/telebot.v3"
)

var (
	btnAssetClass = telebot.Btn{Unique: "asset_class"}
	btnSymbol     = telebot.Btn{Unique: "pick_symbol"}
)

func assetClassMarkup() *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	markup.Inline(markup.Row(
		markup.Data("🛢 Commodity", btnAssetClass.Unique, string(dto.AssetClassCommodity)),
		markup.Data("📊 Stock", btnAssetClass.Unique, string(dto.AssetClassStock)),
	))
	return markup
}

func symbolMarkup(assetClass dto.AssetClass) *telebot.ReplyMarkup {
	var symbols []string
	if assetClass == dto.AssetClassStock {
		for symbol := range dto.StockSymbols {
			symbols = append(symbols, symbol)
		}
	} else {
		for symbol := range dto.CommodityFunctions {
			symbols = append(symbols, symbol)
		}
	}
	sort.Strings(symbols)

	markup := &telebot.ReplyMarkup{}
	var rows []telebot.Row
	var row []telebot.Btn
	for _, symbol := range symbols {
		row = append(row, markup.Data(symbol, btnSymbol.Unique, symbol))
		if len(row) == 3 {
			rows = append(rows, markup.Row(row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, markup.Row(row...))
	}
	markup.Inline(rows...)
	return markup
}
