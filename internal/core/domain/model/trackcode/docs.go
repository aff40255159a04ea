// Package trackcode models a customer's parcel tracking code and the status
// machine it moves through:
//
//	user_added -> warehouse_cn -> shipped_cn -> delivered -> ready -> claimed
//
// Operators may set any non-terminal status (including re-applying the
// current one). claimed is terminal and is entered only by an extradition
// via Claim, from delivered or ready. The authorized correction path
// (Correct) is the only way out of claimed.
package trackcode
