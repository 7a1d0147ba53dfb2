// Package wusul is the SDK for communicating with the [Wusul] API
//
// Wusul issues and manages digital access passes held in Apple and Google
// wallets. Every request the SDK sends is signed with the account's shared
// secret; the secret itself never leaves the process.
//
//	sdk, err := wusul.NewSDK(accountID, sharedSecret)
//	if err != nil {
//		return err
//	}
//	pass, err := sdk.AccessPasses.Issue(ctx, &types.IssueAccessPassParams{...})
//
// # Overview of Packages
//
//   - wusul - The main SDK package, contains the configuration options and errors
//   - accesspasses - The SDK for issuing and managing access passes
//   - console - The SDK for card templates and the event log (Enterprise accounts)
//   - types - The records sent to and returned by the API
//   - wusultest - An in-memory fake of the API for tests
//   - pkg/auth - The request signing scheme, usable on its own
//
// [Wusul]: https://wusul.io
package wusul
