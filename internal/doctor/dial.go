package doctor

import (
	"context"

	"github.com/jasonwu001t/taicfg/internal/broker"
	"github.com/jasonwu001t/taicfg/internal/creds"
)

// Dial functions construct a short-lived client, verify connectivity and
// release it. They only run when Options.Ping is set.

func dialMySQL(ctx context.Context, cfg creds.MySQL) error {
	client, err := broker.NewMySQL(cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	return client.Ping(ctx)
}

func dialRedshift(ctx context.Context, cfg creds.Redshift) error {
	client, err := broker.NewRedshift(cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	return client.Ping(ctx)
}

func dialDynamoDB(ctx context.Context, cfg creds.AWS) error {
	client, err := broker.NewDynamoDB(ctx, cfg)
	if err != nil {
		return err
	}

	return client.Ping(ctx)
}

func dialOpenAI(ctx context.Context, cfg creds.OpenAI) error {
	return broker.NewOpenAI(cfg).Ping(ctx)
}

func dialAlpaca(ctx context.Context, cfg creds.Alpaca) error {
	return broker.NewAlpaca(cfg).Ping(ctx)
}

func dialIB(ctx context.Context, cfg creds.IB) error {
	return broker.NewIB(cfg).Ping(ctx)
}

func dialBLS(ctx context.Context, cfg creds.BLS) error {
	return broker.NewBLS(cfg).Ping(ctx)
}
