package server

import "html/template"

// uploadPageHTML is the single intake page: the EagleView XML upload
// plus the job fields printed on the quote.
const uploadPageHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Company}} Estimator</title>
  <style>
    body { font-family: Helvetica, Arial, sans-serif; max-width: 34em; margin: 3em auto; color: #222; }
    h1 { font-size: 1.4em; }
    label { display: block; margin-top: 1em; font-weight: bold; }
    input { width: 100%; padding: 0.4em; box-sizing: border-box; }
    button { margin-top: 1.5em; padding: 0.6em 1.4em; background: #aed19f; border: none; cursor: pointer; }
  </style>
</head>
<body>
  <h1>{{.Company}} Roofing Estimate</h1>
  <form method="POST" action="/estimate" enctype="multipart/form-data">
    <label for="xmlfile">EagleView XML report</label>
    <input type="file" id="xmlfile" name="xmlfile" accept=".xml" required>

    <label for="client_name">Client name</label>
    <input type="text" id="client_name" name="client_name">

    <label for="job_id">Job ID</label>
    <input type="text" id="job_id" name="job_id">

    <label for="job_location">Job location</label>
    <input type="text" id="job_location" name="job_location">

    <label for="roof_type">Roof type</label>
    <input type="text" id="roof_type" name="roof_type">

    <label for="pitch_text">Pitch</label>
    <input type="text" id="pitch_text" name="pitch_text">

    <button type="submit">Generate Estimate</button>
  </form>
</body>
</html>`

var uploadPage = template.Must(template.New("upload").Parse(uploadPageHTML))
