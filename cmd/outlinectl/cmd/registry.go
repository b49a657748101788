package cmd

// The command surface is declarative: each API resource is a group and each
// operation a leaf naming its endpoint, its flags and whether it paginates.
// One generic dispatcher (exec.go) interprets the whole table.

type flagType int

const (
	// flagString contributes its parameter only when set.
	flagString flagType = iota
	// flagInt contributes its parameter only when set.
	flagInt
	// flagBool is a switch: always transmitted, false when unset.
	flagBool
	// flagOptBool is transmitted only when set explicitly.
	flagOptBool
	// flagJSON parses its argument as a JSON value.
	flagJSON
	// flagList is a comma-separated list transmitted as a JSON array.
	flagList
	// flagFile names a local file whose contents become the parameter.
	flagFile
)

type flagSpec struct {
	name     string // CLI flag name
	param    string // wire parameter name
	typ      flagType
	required bool
	usage    string
}

type commandSpec struct {
	use       string
	short     string
	endpoint  string
	paginated bool
	flags     []flagSpec
}

type groupSpec struct {
	use      string
	short    string
	commands []commandSpec
}

func reqString(name, param, usage string) flagSpec {
	return flagSpec{name: name, param: param, typ: flagString, required: true, usage: usage}
}

func optString(name, param, usage string) flagSpec {
	return flagSpec{name: name, param: param, typ: flagString, usage: usage}
}

func boolFlag(name, param, usage string) flagSpec {
	return flagSpec{name: name, param: param, typ: flagBool, usage: usage}
}

var registry = []groupSpec{
	{
		use:   "attachments",
		short: "Manage attachments",
		commands: []commandSpec{
			{
				use: "create", short: "Create an attachment", endpoint: "attachments.create",
				flags: []flagSpec{
					reqString("name", "name", "File name"),
					reqString("content-type", "contentType", "MIME type (e.g. image/png)"),
					{name: "size", param: "size", typ: flagInt, required: true, usage: "File size in bytes"},
					optString("document-id", "documentId", "Associated document ID"),
				},
			},
			{
				use: "redirect", short: "Retrieve an attachment URL", endpoint: "attachments.redirect",
				flags: []flagSpec{reqString("id", "id", "Attachment ID")},
			},
			{
				use: "delete", short: "Delete an attachment", endpoint: "attachments.delete",
				flags: []flagSpec{reqString("id", "id", "Attachment ID")},
			},
		},
	},
	{
		use:   "auth",
		short: "Authentication operations",
		commands: []commandSpec{
			{use: "info", short: "Retrieve authentication details", endpoint: "auth.info"},
			{use: "config", short: "Retrieve authentication configuration", endpoint: "auth.config"},
		},
	},
	{
		use:   "collections",
		short: "Manage collections",
		commands: []commandSpec{
			{
				use: "info", short: "Retrieve a collection", endpoint: "collections.info",
				flags: []flagSpec{reqString("id", "id", "Collection ID")},
			},
			{use: "list", short: "List all collections", endpoint: "collections.list", paginated: true},
			{
				use: "create", short: "Create a collection", endpoint: "collections.create",
				flags: []flagSpec{
					reqString("name", "name", "Collection name"),
					optString("description", "description", "Collection description"),
					optString("color", "color", "Color hex code"),
					optString("icon", "icon", "Icon name"),
					optString("permission", "permission", "Default permission (read_write or read)"),
					boolFlag("private", "private", "Make collection private"),
				},
			},
			{
				use: "update", short: "Update a collection", endpoint: "collections.update",
				flags: []flagSpec{
					reqString("id", "id", "Collection ID"),
					optString("name", "name", "Collection name"),
					optString("description", "description", "Collection description"),
					optString("color", "color", "Color hex code"),
					optString("icon", "icon", "Icon name"),
					optString("permission", "permission", "Default permission"),
					boolFlag("sharing", "sharing", "Enable sharing"),
				},
			},
			{
				use: "delete", short: "Delete a collection", endpoint: "collections.delete",
				flags: []flagSpec{reqString("id", "id", "Collection ID")},
			},
			{
				use: "add-group", short: "Add a group to a collection", endpoint: "collections.add_group",
				flags: []flagSpec{
					reqString("id", "id", "Collection ID"),
					reqString("group-id", "groupId", "Group ID"),
					optString("permission", "permission", "Permission level (read_write or read)"),
				},
			},
			{
				use: "remove-group", short: "Remove a group from a collection", endpoint: "collections.remove_group",
				flags: []flagSpec{
					reqString("id", "id", "Collection ID"),
					reqString("group-id", "groupId", "Group ID"),
				},
			},
			{
				use: "add-user", short: "Add a user to a collection", endpoint: "collections.add_user",
				flags: []flagSpec{
					reqString("id", "id", "Collection ID"),
					reqString("user-id", "userId", "User ID"),
					optString("permission", "permission", "Permission level"),
				},
			},
			{
				use: "remove-user", short: "Remove a user from a collection", endpoint: "collections.remove_user",
				flags: []flagSpec{
					reqString("id", "id", "Collection ID"),
					reqString("user-id", "userId", "User ID"),
				},
			},
			{
				use: "memberships", short: "List collection memberships", endpoint: "collections.memberships", paginated: true,
				flags: []flagSpec{
					reqString("id", "id", "Collection ID"),
					optString("query", "query", "Search query"),
				},
			},
			{
				use: "group-memberships", short: "List collection group memberships", endpoint: "collections.group_memberships", paginated: true,
				flags: []flagSpec{
					reqString("id", "id", "Collection ID"),
					optString("query", "query", "Search query"),
					optString("permission", "permission", "Filter by permission"),
				},
			},
			{
				use: "documents", short: "List documents in a collection", endpoint: "collections.documents", paginated: true,
				flags: []flagSpec{reqString("id", "id", "Collection ID")},
			},
			{
				use: "export", short: "Export a collection", endpoint: "collections.export",
				flags: []flagSpec{
					reqString("id", "id", "Collection ID"),
					optString("format-type", "format", "Export format"),
				},
			},
			{
				use: "export-all", short: "Export all collections", endpoint: "collections.export_all",
				flags: []flagSpec{optString("format-type", "format", "Export format")},
			},
		},
	},
	{
		use:   "comments",
		short: "Manage comments",
		commands: []commandSpec{
			{
				use: "create", short: "Create a comment", endpoint: "comments.create",
				flags: []flagSpec{
					reqString("document-id", "documentId", "Document ID"),
					{name: "data", param: "data", typ: flagJSON, required: true, usage: "Comment data (JSON)"},
					optString("parent-comment-id", "parentCommentId", "Parent comment ID for replies"),
				},
			},
			{
				use: "info", short: "Retrieve a comment", endpoint: "comments.info",
				flags: []flagSpec{reqString("id", "id", "Comment ID")},
			},
			{
				use: "list", short: "List comments", endpoint: "comments.list", paginated: true,
				flags: []flagSpec{
					optString("document-id", "documentId", "Filter by document ID"),
					optString("collection-id", "collectionId", "Filter by collection ID"),
				},
			},
			{
				use: "update", short: "Update a comment", endpoint: "comments.update",
				flags: []flagSpec{
					reqString("id", "id", "Comment ID"),
					{name: "data", param: "data", typ: flagJSON, required: true, usage: "Comment data (JSON)"},
				},
			},
			{
				use: "delete", short: "Delete a comment", endpoint: "comments.delete",
				flags: []flagSpec{reqString("id", "id", "Comment ID")},
			},
		},
	},
	{
		use:   "data-attributes",
		short: "Manage data attributes",
		commands: []commandSpec{
			{
				use: "create", short: "Create a data attribute", endpoint: "dataAttributes.create",
				flags: []flagSpec{
					reqString("document-id", "documentId", "Document ID"),
					reqString("key", "key", "Attribute key"),
					reqString("value", "value", "Attribute value"),
				},
			},
			{
				use: "info", short: "Retrieve a data attribute", endpoint: "dataAttributes.info",
				flags: []flagSpec{reqString("id", "id", "Data attribute ID")},
			},
			{
				use: "list", short: "List data attributes", endpoint: "dataAttributes.list", paginated: true,
				flags: []flagSpec{optString("document-id", "documentId", "Filter by document ID")},
			},
			{
				use: "update", short: "Update a data attribute", endpoint: "dataAttributes.update",
				flags: []flagSpec{
					reqString("id", "id", "Data attribute ID"),
					reqString("value", "value", "New value"),
				},
			},
			{
				use: "delete", short: "Delete a data attribute", endpoint: "dataAttributes.delete",
				flags: []flagSpec{reqString("id", "id", "Data attribute ID")},
			},
		},
	},
	{
		use:   "documents",
		short: "Manage documents",
		commands: []commandSpec{
			{
				use: "info", short: "Retrieve a document", endpoint: "documents.info",
				flags: []flagSpec{
					reqString("id", "id", "Document ID"),
					optString("share-id", "shareId", "Share ID for public access"),
				},
			},
			{
				use: "list", short: "List all documents", endpoint: "documents.list", paginated: true,
				flags: []flagSpec{
					optString("collection-id", "collectionId", "Filter by collection"),
					optString("parent-document-id", "parentDocumentId", "Filter by parent document"),
					optString("backlink-document-id", "backlinkDocumentId", "Filter by backlink document"),
					boolFlag("template", "template", "Filter templates only"),
				},
			},
			{
				use: "create", short: "Create a document", endpoint: "documents.create",
				flags: []flagSpec{
					reqString("title", "title", "Document title"),
					optString("text", "text", "Document content (markdown)"),
					reqString("collection-id", "collectionId", "Collection ID"),
					optString("parent-document-id", "parentDocumentId", "Parent document ID"),
					boolFlag("template", "template", "Create as template"),
					optString("template-id", "templateId", "Template to use"),
					boolFlag("publish", "publish", "Publish immediately"),
				},
			},
			{
				use: "update", short: "Update a document", endpoint: "documents.update",
				flags: []flagSpec{
					reqString("id", "id", "Document ID"),
					optString("title", "title", "Document title"),
					optString("text", "text", "Document content"),
					boolFlag("append", "append", "Append to existing content"),
					boolFlag("publish", "publish", "Publish document"),
					boolFlag("done", "done", "Mark as done"),
				},
			},
			{
				use: "delete", short: "Delete a document", endpoint: "documents.delete",
				flags: []flagSpec{
					reqString("id", "id", "Document ID"),
					boolFlag("permanent", "permanent", "Permanently delete (skip trash)"),
				},
			},
			{
				use: "search", short: "Search documents", endpoint: "documents.search", paginated: true,
				flags: []flagSpec{
					reqString("query", "query", "Search query"),
					optString("collection-id", "collectionId", "Limit to collection"),
					optString("user-id", "userId", "Filter by user"),
					boolFlag("include-archived", "includeArchived", "Include archived documents"),
					optString("date-filter", "dateFilter", "Date filter (day, week, month, year)"),
				},
			},
			{
				use: "search-titles", short: "Search document titles", endpoint: "documents.search_titles", paginated: true,
				flags: []flagSpec{
					reqString("query", "query", "Search query"),
					optString("collection-id", "collectionId", "Limit to collection"),
				},
			},
			{
				use: "archive", short: "Archive a document", endpoint: "documents.archive",
				flags: []flagSpec{reqString("id", "id", "Document ID")},
			},
			{use: "archived", short: "List archived documents", endpoint: "documents.archived", paginated: true},
			{use: "deleted", short: "List deleted documents", endpoint: "documents.deleted", paginated: true},
			{
				use: "drafts", short: "List draft documents", endpoint: "documents.drafts", paginated: true,
				flags: []flagSpec{optString("collection-id", "collectionId", "Filter by collection")},
			},
			{use: "viewed", short: "List recently viewed documents", endpoint: "documents.viewed", paginated: true},
			{
				use: "move", short: "Move a document", endpoint: "documents.move",
				flags: []flagSpec{
					reqString("id", "id", "Document ID"),
					optString("collection-id", "collectionId", "Target collection ID"),
					optString("parent-document-id", "parentDocumentId", "Target parent document ID"),
					{name: "index", param: "index", typ: flagInt, usage: "Position index"},
				},
			},
			{
				use: "duplicate", short: "Duplicate a document", endpoint: "documents.duplicate",
				flags: []flagSpec{
					reqString("id", "id", "Document ID"),
					optString("title", "title", "Title for the duplicate"),
					optString("collection-id", "collectionId", "Target collection ID"),
					optString("parent-document-id", "parentDocumentId", "Parent document ID"),
					boolFlag("recursive", "recursive", "Duplicate child documents"),
					boolFlag("publish", "publish", "Publish the duplicate"),
				},
			},
			{
				use: "restore", short: "Restore a document from trash", endpoint: "documents.restore",
				flags: []flagSpec{
					reqString("id", "id", "Document ID"),
					optString("revision-id", "revisionId", "Revision ID to restore to"),
					optString("collection-id", "collectionId", "Collection to restore to"),
				},
			},
			{
				use: "unpublish", short: "Unpublish a document", endpoint: "documents.unpublish",
				flags: []flagSpec{reqString("id", "id", "Document ID")},
			},
			{
				use: "import", short: "Import a document", endpoint: "documents.import",
				flags: []flagSpec{
					optString("data", "data", "Document data (JSON string)"),
					{name: "file", param: "data", typ: flagFile, usage: "File to import"},
					reqString("collection-id", "collectionId", "Collection ID"),
					optString("parent-document-id", "parentDocumentId", "Parent document ID"),
					boolFlag("publish", "publish", "Publish after import"),
				},
			},
			{
				use: "export", short: "Export a document", endpoint: "documents.export",
				flags: []flagSpec{reqString("id", "id", "Document ID")},
			},
			{
				use: "templatize", short: "Convert a document to a template", endpoint: "documents.templatize",
				flags: []flagSpec{reqString("id", "id", "Document ID")},
			},
			{
				use: "add-user", short: "Add a user to a document", endpoint: "documents.add_user",
				flags: []flagSpec{
					reqString("id", "id", "Document ID"),
					reqString("user-id", "userId", "User ID"),
					optString("permission", "permission", "Permission level"),
				},
			},
			{
				use: "remove-user", short: "Remove a user from a document", endpoint: "documents.remove_user",
				flags: []flagSpec{
					reqString("id", "id", "Document ID"),
					reqString("user-id", "userId", "User ID"),
				},
			},
			{
				use: "add-group", short: "Add a group to a document", endpoint: "documents.add_group",
				flags: []flagSpec{
					reqString("id", "id", "Document ID"),
					reqString("group-id", "groupId", "Group ID"),
					optString("permission", "permission", "Permission level"),
				},
			},
			{
				use: "remove-group", short: "Remove a group from a document", endpoint: "documents.remove_group",
				flags: []flagSpec{
					reqString("id", "id", "Document ID"),
					reqString("group-id", "groupId", "Group ID"),
				},
			},
			{
				use: "memberships", short: "List document memberships", endpoint: "documents.memberships", paginated: true,
				flags: []flagSpec{
					reqString("id", "id", "Document ID"),
					optString("query", "query", "Search query"),
				},
			},
			{
				use: "group-memberships", short: "List document group memberships", endpoint: "documents.group_memberships", paginated: true,
				flags: []flagSpec{
					reqString("id", "id", "Document ID"),
					optString("query", "query", "Search query"),
				},
			},
			{
				use: "users", short: "List users with access to a document", endpoint: "documents.users", paginated: true,
				flags: []flagSpec{reqString("id", "id", "Document ID")},
			},
			{
				use: "documents", short: "List child documents", endpoint: "documents.documents", paginated: true,
				flags: []flagSpec{reqString("id", "id", "Parent document ID")},
			},
			{use: "empty-trash", short: "Empty the trash", endpoint: "documents.empty_trash"},
			{
				use: "answer-question", short: "Answer a question about a document", endpoint: "documents.answerQuestion",
				flags: []flagSpec{
					reqString("document-id", "documentId", "Document ID"),
					reqString("question", "question", "Question to answer"),
				},
			},
		},
	},
	{
		use:   "events",
		short: "View events",
		commands: []commandSpec{
			{
				use: "list", short: "List events", endpoint: "events.list", paginated: true,
				flags: []flagSpec{
					optString("name", "name", "Filter by event name"),
					optString("actor-id", "actorId", "Filter by actor ID"),
					optString("document-id", "documentId", "Filter by document ID"),
					optString("collection-id", "collectionId", "Filter by collection ID"),
					boolFlag("audit-log", "auditLog", "Include audit log events"),
				},
			},
		},
	},
	{
		use:   "file-operations",
		short: "File operation management",
		commands: []commandSpec{
			{
				use: "info", short: "Retrieve a file operation", endpoint: "fileOperations.info",
				flags: []flagSpec{reqString("id", "id", "File operation ID")},
			},
			{
				use: "list", short: "List file operations", endpoint: "fileOperations.list", paginated: true,
				flags: []flagSpec{optString("type", "type", "Filter by operation type")},
			},
			{
				use: "redirect", short: "Get redirect URL for file operation", endpoint: "fileOperations.redirect",
				flags: []flagSpec{reqString("id", "id", "File operation ID")},
			},
			{
				use: "delete", short: "Delete a file operation", endpoint: "fileOperations.delete",
				flags: []flagSpec{reqString("id", "id", "File operation ID")},
			},
		},
	},
	{
		use:   "groups",
		short: "Manage groups",
		commands: []commandSpec{
			{
				use: "info", short: "Retrieve a group", endpoint: "groups.info",
				flags: []flagSpec{reqString("id", "id", "Group ID")},
			},
			{use: "list", short: "List all groups", endpoint: "groups.list", paginated: true},
			{
				use: "create", short: "Create a group", endpoint: "groups.create",
				flags: []flagSpec{reqString("name", "name", "Group name")},
			},
			{
				use: "update", short: "Update a group", endpoint: "groups.update",
				flags: []flagSpec{
					reqString("id", "id", "Group ID"),
					reqString("name", "name", "New group name"),
				},
			},
			{
				use: "delete", short: "Delete a group", endpoint: "groups.delete",
				flags: []flagSpec{reqString("id", "id", "Group ID")},
			},
			{
				use: "add-user", short: "Add a user to a group", endpoint: "groups.add_user",
				flags: []flagSpec{
					reqString("id", "id", "Group ID"),
					reqString("user-id", "userId", "User ID"),
				},
			},
			{
				use: "remove-user", short: "Remove a user from a group", endpoint: "groups.remove_user",
				flags: []flagSpec{
					reqString("id", "id", "Group ID"),
					reqString("user-id", "userId", "User ID"),
				},
			},
			{
				use: "memberships", short: "List group memberships", endpoint: "groups.memberships", paginated: true,
				flags: []flagSpec{
					reqString("id", "id", "Group ID"),
					optString("query", "query", "Search query"),
				},
			},
		},
	},
	{
		use:   "oauth-clients",
		short: "Manage OAuth clients",
		commands: []commandSpec{
			{
				use: "info", short: "Retrieve an OAuth client", endpoint: "oauthClients.info",
				flags: []flagSpec{reqString("id", "id", "OAuth client ID")},
			},
			{use: "list", short: "List OAuth clients", endpoint: "oauthClients.list", paginated: true},
			{
				use: "create", short: "Create an OAuth client", endpoint: "oauthClients.create",
				flags: []flagSpec{
					reqString("name", "name", "Client name"),
					{name: "redirect-uris", param: "redirectUris", typ: flagList, required: true, usage: "Redirect URIs (comma-separated)"},
				},
			},
			{
				use: "update", short: "Update an OAuth client", endpoint: "oauthClients.update",
				flags: []flagSpec{
					reqString("id", "id", "OAuth client ID"),
					optString("name", "name", "Client name"),
					{name: "redirect-uris", param: "redirectUris", typ: flagList, usage: "Redirect URIs (comma-separated)"},
				},
			},
			{
				use: "delete", short: "Delete an OAuth client", endpoint: "oauthClients.delete",
				flags: []flagSpec{reqString("id", "id", "OAuth client ID")},
			},
			{
				use: "rotate-secret", short: "Rotate OAuth client secret", endpoint: "oauthClients.rotate_secret",
				flags: []flagSpec{reqString("id", "id", "OAuth client ID")},
			},
		},
	},
	{
		use:   "oauth-authentications",
		short: "Manage OAuth authentications",
		commands: []commandSpec{
			{use: "list", short: "List OAuth authentications", endpoint: "oauthAuthentications.list", paginated: true},
			{
				use: "delete", short: "Delete an OAuth authentication", endpoint: "oauthAuthentications.delete",
				flags: []flagSpec{reqString("id", "id", "OAuth authentication ID")},
			},
		},
	},
	{
		use:   "revisions",
		short: "View document revisions",
		commands: []commandSpec{
			{
				use: "info", short: "Retrieve a revision", endpoint: "revisions.info",
				flags: []flagSpec{reqString("id", "id", "Revision ID")},
			},
			{
				use: "list", short: "List document revisions", endpoint: "revisions.list", paginated: true,
				flags: []flagSpec{reqString("document-id", "documentId", "Document ID")},
			},
		},
	},
	{
		use:   "shares",
		short: "Manage shares",
		commands: []commandSpec{
			{
				use: "info", short: "Retrieve a share", endpoint: "shares.info",
				flags: []flagSpec{reqString("id", "id", "Share ID")},
			},
			{use: "list", short: "List shares", endpoint: "shares.list", paginated: true},
			{
				use: "create", short: "Create a share", endpoint: "shares.create",
				flags: []flagSpec{
					reqString("document-id", "documentId", "Document ID"),
					boolFlag("published", "published", "Make share published"),
				},
			},
			{
				use: "update", short: "Update a share", endpoint: "shares.update",
				flags: []flagSpec{
					reqString("id", "id", "Share ID"),
					{name: "published", param: "published", typ: flagOptBool, usage: "Published status"},
				},
			},
			{
				use: "revoke", short: "Revoke a share", endpoint: "shares.revoke",
				flags: []flagSpec{reqString("id", "id", "Share ID")},
			},
		},
	},
	{
		use:   "stars",
		short: "Manage stars",
		commands: []commandSpec{
			{use: "list", short: "List starred documents", endpoint: "stars.list", paginated: true},
			{
				use: "create", short: "Star a document", endpoint: "stars.create",
				flags: []flagSpec{reqString("document-id", "documentId", "Document ID")},
			},
			{
				use: "update", short: "Update star position", endpoint: "stars.update",
				flags: []flagSpec{
					reqString("id", "id", "Star ID"),
					{name: "index", param: "index", typ: flagInt, required: true, usage: "New index position"},
				},
			},
			{
				use: "delete", short: "Remove a star", endpoint: "stars.delete",
				flags: []flagSpec{reqString("id", "id", "Star ID")},
			},
		},
	},
	{
		use:   "users",
		short: "Manage users",
		commands: []commandSpec{
			{
				use: "info", short: "Retrieve a user (current user if no ID specified)", endpoint: "users.info",
				flags: []flagSpec{optString("id", "id", "User ID")},
			},
			{
				use: "list", short: "List users", endpoint: "users.list", paginated: true,
				flags: []flagSpec{
					optString("query", "query", "Search query"),
					optString("filter", "filter", "Filter type (all, admins, members, suspended, invited)"),
				},
			},
			{
				use: "invite", short: "Invite a user", endpoint: "users.invite",
				flags: []flagSpec{
					reqString("email", "email", "User email"),
					reqString("name", "name", "User name"),
					optString("role", "role", "User role (admin, member, viewer)"),
				},
			},
			{
				use: "update", short: "Update a user", endpoint: "users.update",
				flags: []flagSpec{
					reqString("id", "id", "User ID"),
					optString("name", "name", "User name"),
					optString("avatar-url", "avatarUrl", "Avatar URL"),
					optString("language", "language", "Language code"),
				},
			},
			{
				use: "update-role", short: "Update user role", endpoint: "users.update_role",
				flags: []flagSpec{
					reqString("id", "id", "User ID"),
					reqString("role", "role", "New role (admin, member, viewer)"),
				},
			},
			{
				use: "activate", short: "Activate a suspended user", endpoint: "users.activate",
				flags: []flagSpec{reqString("id", "id", "User ID")},
			},
			{
				use: "suspend", short: "Suspend a user", endpoint: "users.suspend",
				flags: []flagSpec{reqString("id", "id", "User ID")},
			},
			{
				use: "delete", short: "Delete a user", endpoint: "users.delete",
				flags: []flagSpec{reqString("id", "id", "User ID")},
			},
		},
	},
	{
		use:   "views",
		short: "View document views",
		commands: []commandSpec{
			{
				use: "list", short: "List document views", endpoint: "views.list", paginated: true,
				flags: []flagSpec{reqString("document-id", "documentId", "Document ID")},
			},
			{
				use: "create", short: "Create a view (track document view)", endpoint: "views.create",
				flags: []flagSpec{reqString("document-id", "documentId", "Document ID")},
			},
		},
	},
}
