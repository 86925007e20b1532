package resources

// SecretField maps a plaintext body key to the stored hash column. Secret
// columns never appear in a Select or Returning list.
type SecretField struct {
	JSONKey string // request body key carrying the plaintext
	Column  string // column receiving the one-way hash
}

// Descriptor is the static storage mapping for one resource. The generic
// handler and service are driven entirely by this table; per-resource
// behavior differences live here, not in code.
type Descriptor struct {
	Name     string // singular resource name, used in routes and logs
	Table    string // target table for writes
	IDColumn string // id column for writes

	Select  string // read column list, secrets omitted
	From    string // table plus optional join for reads
	IDRef   string // qualified id column for item reads
	OrderBy string // list ordering

	Returning string // column list returned by INSERT/UPDATE, secrets omitted

	CreateFields []string // body keys required on create
	UpdateFields []string // body keys required on update
	Secrets      []SecretField

	// Public endpoints skip the bearer-token gate (contact form only).
	Public bool

	NotFoundMessage      string
	MissingCreateMessage string
	MissingUpdateMessage string
}

// HasSecret reports whether jsonKey is one of the descriptor's secret fields
func (d *Descriptor) HasSecret(jsonKey string) (SecretField, bool) {
	for _, s := range d.Secrets {
		if s.JSONKey == jsonKey {
			return s, true
		}
	}
	return SecretField{}, false
}

// Admins describes administrator accounts. Reads never include the password
// hash; the plaintext password is required on create and optional on update.
var Admins = Descriptor{
	Name:     "admin",
	Table:    "admins",
	IDColumn: "id",

	Select:  "id, email, created_at",
	From:    "admins",
	IDRef:   "id",
	OrderBy: "created_at DESC",

	Returning: "id, email, created_at",

	CreateFields: []string{"email", "password"},
	UpdateFields: []string{"email"},
	Secrets:      []SecretField{{JSONKey: "password", Column: "password_hash"}},

	NotFoundMessage:      "Admin not found",
	MissingCreateMessage: "Email and password are required",
	MissingUpdateMessage: "Email is required",
}

// Employees describes employee records
var Employees = Descriptor{
	Name:     "employee",
	Table:    "employees",
	IDColumn: "id",

	Select:  "id, name, email, position, joining_date, salary, created_at",
	From:    "employees",
	IDRef:   "id",
	OrderBy: "created_at DESC",

	Returning: "id, name, email, position, joining_date, salary, created_at",

	CreateFields: []string{"name", "email", "position", "joining_date", "salary"},
	UpdateFields: []string{"name", "email", "position", "joining_date", "salary"},

	NotFoundMessage:      "Employee not found",
	MissingCreateMessage: "All fields are required",
	MissingUpdateMessage: "All fields are required",
}

// Certificates describes certificate records
var Certificates = Descriptor{
	Name:     "certificate",
	Table:    "certificates",
	IDColumn: "id",

	Select:  "id, name, start_date, end_date, type, created_at",
	From:    "certificates",
	IDRef:   "id",
	OrderBy: "created_at DESC",

	Returning: "id, name, start_date, end_date, type, created_at",

	CreateFields: []string{"name", "start_date", "end_date", "type"},
	UpdateFields: []string{"name", "start_date", "end_date", "type"},

	NotFoundMessage:      "Certificate not found",
	MissingCreateMessage: "All fields are required",
	MissingUpdateMessage: "All fields are required",
}

// Tasks describes tasks. Reads join employees to attach employee_name; the
// employee_id foreign key is enforced by storage, not here.
var Tasks = Descriptor{
	Name:     "task",
	Table:    "tasks",
	IDColumn: "id",

	Select:  "t.id, t.employee_id, t.title, t.description, t.status, t.due_date, t.created_at, e.name AS employee_name",
	From:    "tasks t JOIN employees e ON t.employee_id = e.id",
	IDRef:   "t.id",
	OrderBy: "t.created_at DESC",

	Returning: "id, employee_id, title, description, status, due_date, created_at",

	CreateFields: []string{"employee_id", "title", "description", "status", "due_date"},
	UpdateFields: []string{"employee_id", "title", "description", "status", "due_date"},

	NotFoundMessage:      "Task not found",
	MissingCreateMessage: "All fields are required",
	MissingUpdateMessage: "All fields are required",
}

// Contacts describes contact-form messages. Submission and listing are
// public by design; there is no item endpoint.
var Contacts = Descriptor{
	Name:     "contact",
	Table:    "contacts",
	IDColumn: "id",

	Select:  "id, name, email, subject, message, created_at",
	From:    "contacts",
	IDRef:   "id",
	OrderBy: "created_at DESC",

	Returning: "id, name, email, subject, message, created_at",

	CreateFields: []string{"name", "email", "subject", "message"},

	Public: true,

	NotFoundMessage:      "Contact message not found",
	MissingCreateMessage: "All fields (name, email, subject, message) are required",
}

// All lists every registered descriptor
var All = []*Descriptor{&Admins, &Employees, &Certificates, &Tasks, &Contacts}
