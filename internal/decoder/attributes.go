package decoder

// Element names on the wire.
const (
	PendingOperationElement = "GetOperation"
	VersionedItemElement    = "Item"
)

// GetOperation attributes.
const (
	attrType             = "type"
	attrItemID           = "itemid"
	attrSourceLocal      = "slocal"
	attrTargetLocal      = "tlocal"
	attrSourceServerItem = "sitem"
	attrTargetServerItem = "titem"
	attrVersionServer    = "sver"
	attrVersionLocal     = "lver"
	attrDeletionID       = "did"
	attrChangeType       = "chg"
	attrLockLevel        = "lock"
	attrDownloadURL      = "durl"
	attrEncoding         = "enc"
	attrPendingChangeID  = "pcid"
	attrIsLatest         = "il"
	attrHasConflict      = "cnflct"
)

// Item attributes not shared with GetOperation.
const (
	attrServerItem    = "item"
	attrCheckinDate   = "date"
	attrChangeset     = "cs"
	attrContentLength = "len"
	attrHash          = "hash"
)
