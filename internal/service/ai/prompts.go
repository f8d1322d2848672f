package ai

import "fmt"

// FallbackReply is returned when the completion provider answers successfully
// but yields no extractable content.
const FallbackReply = "Sorry, I could not generate a reply."

// systemPrompt pins the assistant persona: plain conversational explanations
// of wallet basics, no formatting, no financial advice.
const systemPrompt = "You are WalletGPT, a friendly assistant who explains a user's Ethereum wallet in extremely simple, everyday language. " +
	"Keep responses short, clear, and conversational. " +
	"Never use markdown, bullet points, headings, emojis, asterisks, or lists of steps. " +
	"Never give instructions about buying crypto or recommending exchanges. " +
	"You only explain: what the user's balance means, how to safely send or receive funds, how to avoid scams, and basic wallet safety. " +
	"Do not give financial advice. Keep it under 3–5 sentences."

// walletContext interpolates the snapshot facts verbatim into a second system
// message so the model can reference them.
func walletContext(address, balanceEth string) string {
	return fmt.Sprintf(
		"Wallet info: Address %s, ETH balance %s ETH. You can reference this in simple ways. Do not explain prices, investing, taxes, or exchanges.",
		address, balanceEth,
	)
}
