package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/nirbhik/walletgpt/backend/internal/config"
	"github.com/nirbhik/walletgpt/backend/internal/model/chat"
	"github.com/nirbhik/walletgpt/backend/internal/service/exchange"
	walletservice "github.com/nirbhik/walletgpt/backend/internal/service/wallet"
)

// chatcli connects a wallet through a JSON-RPC provider and chats with a
// running WalletGPT API from the terminal.
func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if err := godotenv.Load(); err != nil {
		log.Printf("[WARN] no .env file, using system environment: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	apiURL := flag.String("api", "http://localhost:8080", "base URL of the WalletGPT API")
	rpcURL := flag.String("rpc", cfg.Wallet.RPCURL, "wallet provider JSON-RPC URL (default from WALLET_RPC_URL)")
	timeout := flag.Duration("timeout", 90*time.Second, "per-message request timeout")
	flag.Parse()

	if *rpcURL == "" {
		flag.Usage()
		log.Fatal("wallet provider URL required: pass -rpc or set WALLET_RPC_URL")
	}

	client, err := connect(*rpcURL, *apiURL)
	if err != nil {
		log.Fatalf("wallet connect failed: %v", err)
	}

	snapshot, _ := client.Wallet()
	fmt.Printf("Connected address: %s\n", snapshot.Address)
	fmt.Printf("ETH balance: %s ETH\n", snapshot.BalanceEth)
	fmt.Println(`Ask something like "Explain my wallet in simple words". Ctrl-D to quit.`)

	runChatLoop(client, *timeout)
}

func connect(rpcURL, apiURL string) (*exchange.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	provider, err := walletservice.DialProvider(ctx, rpcURL)
	if err != nil {
		return nil, err
	}

	adapter := walletservice.NewAdapter(provider)
	snapshot, err := adapter.Connect(ctx)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrNoProvider):
			return nil, errors.New("wallet provider not found, check the RPC URL")
		case errors.Is(err, walletservice.ErrUserRejected):
			return nil, errors.New("connection rejected in the wallet, run again to retry")
		default:
			return nil, err
		}
	}

	client := exchange.NewClient(exchange.NewHTTPEndpoint(apiURL))
	client.Connect(snapshot)
	return client, nil
}

func runChatLoop(client *exchange.Client, timeout time.Duration) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			fmt.Println()
			return
		}

		turn, err := send(client, scanner.Text(), timeout)
		if err != nil {
			if errors.Is(err, exchange.ErrEmptyInput) {
				continue
			}
			// No automatic retry; the user re-submits if they want another go.
			fmt.Printf("error: %v\n", err)
			continue
		}

		fmt.Printf("ai> %s\n", strings.TrimSpace(turn.Content))
	}
}

func send(client *exchange.Client, text string, timeout time.Duration) (chat.Turn, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return client.Send(ctx, text)
}
