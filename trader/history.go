// Copyright (c) 2026 Coinbase Agent Authors

package trader

import (
	"context"
	"fmt"

	"coinbase-agent/sigdigits"
)

// LastFilledOrders fetches the most recent filled orders, each formatted as
// "<time> <SIDE> <size> <product_id> @ <price>". The exchange's ordering is
// preserved (most recent first). An empty productID fetches across all
// products.
func (t *Trader) LastFilledOrders(ctx context.Context, productID string, limit int) ([]string, error) {
	if len(productID) > 0 {
		if err := CheckProductID(productID); err != nil {
			return nil, err
		}
	}
	if limit <= 0 {
		limit = t.opts.FilledOrdersLimit
	}

	resp, err := t.ex.ListFilledOrders(ctx, productID, limit)
	if err != nil {
		return nil, err
	}

	n := t.opts.SigDigits
	var orders []string
	for _, o := range resp.Orders {
		entry := fmt.Sprintf("%s %s %s %s @ %s",
			o.CreatedTime.Time.UTC().Format("2006-01-02T15:04:05Z"),
			o.Side,
			sigdigits.Round(o.FilledSize.String(), n),
			o.ProductID,
			sigdigits.Round(o.AvgFilledPrice.String(), n))
		orders = append(orders, entry)
	}
	return orders, nil
}

// WalletBalances fetches the available balance of every account, one
// "<amount> <currency>" entry per account. The result is always a full
// snapshot, never a partial merge.
func (t *Trader) WalletBalances(ctx context.Context) ([]string, error) {
	resp, err := t.ex.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}

	var wallet []string
	for _, a := range resp.Accounts {
		b := a.AvailableBalance
		wallet = append(wallet, sigdigits.Round(b.Value.String(), t.opts.SigDigits)+" "+b.Currency)
	}
	return wallet, nil
}
